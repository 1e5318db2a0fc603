package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// StockUseCase deriva saldos y estadísticas del libro de movimientos.
// No hay caché: cada llamada vuelve a recorrer los movimientos relevantes, así que el
// resultado siempre coincide con el libro.
type StockUseCase struct {
	movRepo     repository.InventoryMovementRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(movRepo repository.InventoryMovementRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{movRepo: movRepo, productRepo: productRepo}
}

// GetBalance suma todas las cantidades del producto. ErrNotFound si el producto no existe.
func (uc *StockUseCase) GetBalance(ctx context.Context, productID string) (*inventory.ProductBalance, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener producto: %w", domain.ErrPersistence, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.List(ctx, repository.MovementFilter{ProductID: productID})
	if err != nil {
		return nil, fmt.Errorf("%w: listar movimientos: %w", domain.ErrPersistence, err)
	}
	return &inventory.ProductBalance{
		ProductID: productID,
		Quantity:  inventory.Balance(movements),
	}, nil
}

// GetStats entradas, salidas, neto y conteo de los movimientos del período (nil = todo).
func (uc *StockUseCase) GetStats(ctx context.Context, period *inventory.Period) (inventory.MovementStats, error) {
	filter := repository.MovementFilter{}
	if period != nil {
		filter.From, filter.To = period.From, period.To
	}
	movements, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return inventory.MovementStats{}, fmt.Errorf("%w: listar movimientos: %w", domain.ErrPersistence, err)
	}
	return inventory.Stats(movements), nil
}

// ListBalances saldo de cada producto de la página del catálogo.
// Productos sin movimientos aparecen con saldo 0.
func (uc *StockUseCase) ListBalances(ctx context.Context, limit, offset int) (*dto.BalanceListResponse, error) {
	products, err := uc.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: listar productos: %w", domain.ErrPersistence, err)
	}
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	sums := map[string]int{}
	if len(ids) > 0 {
		sums, err = uc.movRepo.SumByProduct(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: sumar movimientos: %w", domain.ErrPersistence, err)
		}
	}
	items := make([]dto.BalanceResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.BalanceResponse{
			ProductID:   p.ID,
			ProductCode: p.Code,
			ProductName: p.Name,
			Quantity:    sums[p.ID],
		})
	}
	return &dto.BalanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovements lista movimientos (más recientes primero) con su tipo derivado.
func (uc *StockUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	movements, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: listar movimientos: %w", domain.ErrPersistence, err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}
