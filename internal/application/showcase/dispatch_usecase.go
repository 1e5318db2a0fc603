package showcase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appinventory "github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// DispatchItem pieza enviada: cantidad positiva que sale del stock.
type DispatchItem struct {
	ProductID string
	Quantity  int
}

// DispatchInput entrada para despachar una vitrina a un distribuidor.
type DispatchInput struct {
	DistributorID string
	Items         []DispatchItem
	UserID        string
}

// DispatchUseCase crea la vitrina y sus salidas de stock en una sola transacción.
type DispatchUseCase struct {
	txRunner    appinventory.TxRunner
	ledger      *appinventory.RegisterMovementUseCase
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	log         zerolog.Logger
	now         func() time.Time
}

// NewDispatchUseCase construye el caso de uso.
func NewDispatchUseCase(
	txRunner appinventory.TxRunner,
	ledger *appinventory.RegisterMovementUseCase,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	log zerolog.Logger,
) *DispatchUseCase {
	return &DispatchUseCase{
		txRunner:    txRunner,
		ledger:      ledger,
		productRepo: productRepo,
		userRepo:    userRepo,
		log:         log,
		now:         time.Now,
	}
}

// DispatchShowcase valida distribuidor y productos, crea la vitrina y registra un movimiento
// -q con motivo "vitrine" por cada pieza. Todo o nada.
func (uc *DispatchUseCase) DispatchShowcase(ctx context.Context, in DispatchInput) (*inventory.ShowcaseSummary, error) {
	if strings.TrimSpace(in.DistributorID) == "" {
		return nil, fmt.Errorf("%w: distributor_id requerido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la vitrina debe tener al menos una pieza", domain.ErrInvalidInput)
	}

	distributor, err := uc.userRepo.GetByID(ctx, in.DistributorID)
	if err != nil {
		return nil, fmt.Errorf("%w: obtener distribuidor: %w", domain.ErrPersistence, err)
	}
	if distributor == nil {
		return nil, fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, in.DistributorID)
	}
	if !distributor.IsDistributor() {
		return nil, fmt.Errorf("%w: el usuario %s no es distribuidor", domain.ErrInvalidInput, in.DistributorID)
	}

	products := make(map[string]*entity.Product, len(in.Items))
	for i, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: pieza %d: quantity debe ser mayor a cero", domain.ErrInvalidInput, i)
		}
		if _, ok := products[it.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: obtener producto: %w", domain.ErrPersistence, err)
		}
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
		}
		products[it.ProductID] = p
	}

	now := uc.now()
	sc := &entity.Showcase{
		ID:            uuid.New().String(),
		DistributorID: distributor.ID,
		CreatedAt:     now,
	}
	sc.Code = NewShowcaseCode(now, sc.ID)

	inputs := make([]appinventory.MovementInput, 0, len(in.Items))
	for _, it := range in.Items {
		inputs = append(inputs, appinventory.MovementInput{
			ProductID:  it.ProductID,
			Quantity:   -it.Quantity,
			Reason:     entity.ReasonShowcase,
			ShowcaseID: sc.ID,
			UserID:     in.UserID,
		})
	}

	var created []*entity.InventoryMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		showcaseRepo repository.ShowcaseRepository,
	) error {
		if err := showcaseRepo.Create(ctx, sc); err != nil {
			return err
		}
		var err error
		created, err = uc.ledger.AppendInTx(ctx, movRepo, inputs, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: despachar vitrina: %w", domain.ErrPersistence, err)
	}

	items := make([]inventory.ShowcaseItem, 0, len(created))
	for _, m := range created {
		items = append(items, inventory.NewShowcaseItem(m, products[m.ProductID]))
	}
	sum := inventory.Summarize(*sc, items)

	uc.log.Info().
		Str("showcase_id", sc.ID).
		Str("code", sc.Code).
		Str("distributor_id", sc.DistributorID).
		Int("pieces", sum.TotalPieces).
		Msg("vitrina despachada")
	return &sum, nil
}

// NewShowcaseCode código legible: VT-AAAAMMDD-XXXXXX (prefijo del ID).
func NewShowcaseCode(at time.Time, id string) string {
	suffix := strings.ReplaceAll(id, "-", "")
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("VT-%s-%s", at.Format("20060102"), strings.ToUpper(suffix))
}
