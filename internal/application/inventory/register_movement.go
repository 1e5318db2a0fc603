package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// LedgerOptions políticas de escritura del libro.
type LedgerOptions struct {
	// RejectZeroQuantity rechaza movimientos en cero (por defecto se guardan como "neutro").
	RejectZeroQuantity bool
}

// RegisterMovementUseCase agrega movimientos al libro de inventario.
// Escritura estricta: cualquier error se devuelve al caller y no se reintenta.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	movRepo      repository.InventoryMovementRepository
	productRepo  repository.ProductRepository
	showcaseRepo repository.ShowcaseRepository
	opts         LedgerOptions
	log          zerolog.Logger
	now          func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	showcaseRepo repository.ShowcaseRepository,
	opts LedgerOptions,
	log zerolog.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		movRepo:      movRepo,
		productRepo:  productRepo,
		showcaseRepo: showcaseRepo,
		opts:         opts,
		log:          log,
		now:          time.Now,
	}
}

// MovementInput entrada para registrar un movimiento.
// Quantity con signo: positivo entrada, negativo salida.
type MovementInput struct {
	ProductID  string
	Quantity   int
	Reason     string
	ShowcaseID string
	UserID     string
}

// RecordMovement valida la entrada, verifica que el producto (y la vitrina, si viene) existan
// y agrega un único registro inmutable.
//
// Errores:
//   - domain.ErrInvalidInput  campos obligatorios ausentes o cantidad cero con RejectZeroQuantity.
//   - domain.ErrNotFound      producto o vitrina inexistente.
//   - domain.ErrPersistence   fallo del almacén.
func (uc *RegisterMovementUseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.InventoryMovement, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, uc.productRepo, uc.showcaseRepo, in); err != nil {
		return nil, err
	}

	mov := uc.newMovement(in, uc.now())
	if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, fmt.Errorf("%w: registrar movimiento: %w", domain.ErrPersistence, err)
	}

	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("product_id", mov.ProductID).
		Int("quantity", mov.Quantity).
		Str("reason", mov.Reason).
		Msg("movimiento registrado")
	return mov, nil
}

// RecordMovements registra varios movimientos en una sola transacción: todos o ninguno.
// Todos comparten la misma fecha de creación.
func (uc *RegisterMovementUseCase) RecordMovements(ctx context.Context, inputs []MovementInput) ([]*entity.InventoryMovement, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: sin movimientos", domain.ErrInvalidInput)
	}
	for i, in := range inputs {
		if err := uc.validate(in); err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", i, err)
		}
		if err := uc.checkReferences(ctx, uc.productRepo, uc.showcaseRepo, in); err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", i, err)
		}
	}

	now := uc.now()
	created := make([]*entity.InventoryMovement, 0, len(inputs))
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		_ repository.ShowcaseRepository,
	) error {
		for _, in := range inputs {
			mov := uc.newMovement(in, now)
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			created = append(created, mov)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: registrar movimientos: %w", domain.ErrPersistence, err)
	}

	uc.log.Info().Int("count", len(created)).Msg("movimientos registrados")
	return created, nil
}

// AppendInTx agrega movimientos usando el repositorio de una transacción abierta por el caller
// (despacho de vitrinas). No valida: el caller ya lo hizo.
func (uc *RegisterMovementUseCase) AppendInTx(
	ctx context.Context,
	movRepo repository.InventoryMovementRepository,
	inputs []MovementInput,
	now time.Time,
) ([]*entity.InventoryMovement, error) {
	created := make([]*entity.InventoryMovement, 0, len(inputs))
	for _, in := range inputs {
		mov := uc.newMovement(in, now)
		if err := movRepo.Create(ctx, mov); err != nil {
			return nil, err
		}
		created = append(created, mov)
	}
	return created, nil
}

// Validate aplica las reglas de entrada sin tocar el almacén.
func (uc *RegisterMovementUseCase) Validate(in MovementInput) error {
	return uc.validate(in)
}

func (uc *RegisterMovementUseCase) validate(in MovementInput) error {
	if strings.TrimSpace(in.ProductID) == "" {
		return fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Reason) == "" {
		return fmt.Errorf("%w: reason requerido", domain.ErrInvalidInput)
	}
	// Cantidad cero se guarda como "neutro" salvo que la política la rechace.
	if in.Quantity == 0 && uc.opts.RejectZeroQuantity {
		return fmt.Errorf("%w: quantity no puede ser cero", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *RegisterMovementUseCase) checkReferences(
	ctx context.Context,
	productRepo repository.ProductRepository,
	showcaseRepo repository.ShowcaseRepository,
	in MovementInput,
) error {
	product, err := productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return fmt.Errorf("%w: obtener producto: %w", domain.ErrPersistence, err)
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	if in.ShowcaseID == "" {
		return nil
	}
	showcase, err := showcaseRepo.GetByID(ctx, in.ShowcaseID)
	if err != nil {
		return fmt.Errorf("%w: obtener vitrina: %w", domain.ErrPersistence, err)
	}
	if showcase == nil {
		return fmt.Errorf("%w: vitrina %s", domain.ErrNotFound, in.ShowcaseID)
	}
	return nil
}

func (uc *RegisterMovementUseCase) newMovement(in MovementInput, now time.Time) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		Reason:     strings.TrimSpace(in.Reason),
		ShowcaseID: in.ShowcaseID,
		CreatedBy:  in.UserID,
		CreatedAt:  now,
	}
}
