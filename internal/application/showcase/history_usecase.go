// Package showcase contiene los casos de uso de vitrinas (envíos en consignación):
// historial por distribuidor, despacho y planilla PDF.
package showcase

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// HistoryUseCase reconstruye las vitrinas a partir del libro de movimientos.
//
// Lectura tolerante: si falla la consulta de vitrinas o de movimientos se devuelve el error,
// pero un producto que no se puede resolver solo excluye esa línea del reporte.
type HistoryUseCase struct {
	showcaseRepo repository.ShowcaseRepository
	movRepo      repository.InventoryMovementRepository
	productRepo  repository.ProductRepository
	log          zerolog.Logger
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	showcaseRepo repository.ShowcaseRepository,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	log zerolog.Logger,
) *HistoryUseCase {
	return &HistoryUseCase{
		showcaseRepo: showcaseRepo,
		movRepo:      movRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

// GetShowcaseHistory devuelve las vitrinas del distribuidor, más recientes primero.
// start/end filtran por fecha de creación (inclusivos); nil no restringe.
// Se omiten las vitrinas sin movimientos y aquellas cuyas líneas no se pudieron resolver.
func (uc *HistoryUseCase) GetShowcaseHistory(
	ctx context.Context,
	distributorID string,
	start, end *time.Time,
) ([]inventory.ShowcaseSummary, error) {
	if distributorID == "" {
		return nil, fmt.Errorf("%w: distributor_id requerido", domain.ErrInvalidInput)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, fmt.Errorf("%w: start posterior a end", domain.ErrInvalidInput)
	}

	showcases, err := uc.showcaseRepo.List(ctx, repository.ShowcaseFilter{
		DistributorID: distributorID,
		From:          start,
		To:            end,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: listar vitrinas: %w", domain.ErrPersistence, err)
	}
	if len(showcases) == 0 {
		return []inventory.ShowcaseSummary{}, nil
	}

	ids := make([]string, 0, len(showcases))
	for _, sc := range showcases {
		ids = append(ids, sc.ID)
	}
	movements, err := uc.movRepo.List(ctx, repository.MovementFilter{ShowcaseIDs: ids})
	if err != nil {
		return nil, fmt.Errorf("%w: listar movimientos de vitrinas: %w", domain.ErrPersistence, err)
	}
	byShowcase := make(map[string][]*entity.InventoryMovement, len(showcases))
	for _, m := range movements {
		byShowcase[m.ShowcaseID] = append(byShowcase[m.ShowcaseID], m)
	}

	resolver := newProductResolver(uc.productRepo)
	out := make([]inventory.ShowcaseSummary, 0, len(showcases))
	for _, sc := range showcases {
		ms := byShowcase[sc.ID]
		if len(ms) == 0 {
			continue
		}
		items := uc.collect(sc, resolver.items(ctx, ms))
		if len(items) == 0 {
			continue
		}
		out = append(out, inventory.Summarize(*sc, items))
	}
	return out, nil
}

// GetShowcase resumen de una vitrina. A diferencia del historial, una vitrina sin líneas
// se devuelve igual (con totales en cero).
func (uc *HistoryUseCase) GetShowcase(ctx context.Context, showcaseID string) (*inventory.ShowcaseSummary, error) {
	sc, err := uc.showcaseRepo.GetByID(ctx, showcaseID)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener vitrina: %w", domain.ErrPersistence, err)
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.List(ctx, repository.MovementFilter{ShowcaseID: showcaseID})
	if err != nil {
		return nil, fmt.Errorf("%w: listar movimientos de vitrina: %w", domain.ErrPersistence, err)
	}
	items := uc.collect(sc, newProductResolver(uc.productRepo).items(ctx, movements))
	sum := inventory.Summarize(*sc, items)
	return &sum, nil
}

// collect consume la secuencia descartando (y registrando) las líneas con error.
func (uc *HistoryUseCase) collect(sc *entity.Showcase, seq iter.Seq2[inventory.ShowcaseItem, error]) []inventory.ShowcaseItem {
	items := make([]inventory.ShowcaseItem, 0)
	for item, err := range seq {
		if err != nil {
			uc.log.Warn().
				Err(err).
				Str("showcase_id", sc.ID).
				Str("movement_id", item.MovementID).
				Msg("línea de vitrina omitida")
			continue
		}
		items = append(items, item)
	}
	return items
}

// productResolver memoriza las búsquedas de producto durante una sola llamada.
type productResolver struct {
	repo  repository.ProductRepository
	found map[string]*entity.Product
	errs  map[string]error
}

func newProductResolver(repo repository.ProductRepository) *productResolver {
	return &productResolver{
		repo:  repo,
		found: make(map[string]*entity.Product),
		errs:  make(map[string]error),
	}
}

func (r *productResolver) resolve(ctx context.Context, id string) (*entity.Product, error) {
	if p, ok := r.found[id]; ok {
		return p, nil
	}
	if err, ok := r.errs[id]; ok {
		return nil, err
	}
	p, err := r.repo.GetByID(ctx, id)
	if err == nil && p == nil {
		err = fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if err != nil {
		r.errs[id] = err
		return nil, err
	}
	r.found[id] = p
	return p, nil
}

// items produce una línea por movimiento, o el error de resolución de su producto.
func (r *productResolver) items(ctx context.Context, movements []*entity.InventoryMovement) iter.Seq2[inventory.ShowcaseItem, error] {
	return func(yield func(inventory.ShowcaseItem, error) bool) {
		for _, m := range movements {
			p, err := r.resolve(ctx, m.ProductID)
			if err != nil {
				if !yield(inventory.ShowcaseItem{MovementID: m.ID}, err) {
					return
				}
				continue
			}
			if !yield(inventory.NewShowcaseItem(m, p), nil) {
				return
			}
		}
	}
}
