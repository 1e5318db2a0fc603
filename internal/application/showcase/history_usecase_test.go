package showcase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/memory"
)

// ── fixtures ─────────────────────────────────────────────────────────────────

func day(d int) time.Time { return time.Date(2026, time.January, d, 10, 0, 0, 0, time.UTC) }

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

type fixture struct {
	store *memory.Store
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore(), ctx: context.Background()}
	require.NoError(t, f.store.Users().Create(f.ctx, &entity.User{ID: "d1", Email: "d1@x.com", Name: "Ana", Role: entity.RoleDistributor, Status: entity.UserStatusActive}))
	require.NoError(t, f.store.Users().Create(f.ctx, &entity.User{ID: "d2", Email: "d2@x.com", Name: "Bea", Role: entity.RoleDistributor, Status: entity.UserStatusActive}))
	require.NoError(t, f.store.Users().Create(f.ctx, &entity.User{ID: "adm", Email: "adm@x.com", Name: "Admin", Role: entity.RoleAdmin, Status: entity.UserStatusActive}))
	require.NoError(t, f.store.Products().Create(f.ctx, &entity.Product{ID: "A", Code: "AN-01", Name: "Anillo", SellingPrice: price(1000)}))
	require.NoError(t, f.store.Products().Create(f.ctx, &entity.Product{ID: "B", Code: "CO-01", Name: "Collar", SellingPrice: price(500)}))
	require.NoError(t, f.store.Products().Create(f.ctx, &entity.Product{ID: "C", Code: "PU-01", Name: "Pulsera", CostPrice: price(300)}))
	return f
}

func (f *fixture) showcase(t *testing.T, id, distributorID string, at time.Time) {
	t.Helper()
	require.NoError(t, f.store.Showcases().Create(f.ctx, &entity.Showcase{ID: id, Code: "VT-" + id, DistributorID: distributorID, CreatedAt: at}))
}

func (f *fixture) movement(t *testing.T, id, showcaseID, productID string, qty int, at time.Time) {
	t.Helper()
	require.NoError(t, f.store.Movements().Create(f.ctx, &entity.InventoryMovement{
		ID: id, ProductID: productID, Quantity: qty, Reason: entity.ReasonShowcase, ShowcaseID: showcaseID, CreatedAt: at,
	}))
}

func (f *fixture) history(products repository.ProductRepository) *showcase.HistoryUseCase {
	if products == nil {
		products = f.store.Products()
	}
	return showcase.NewHistoryUseCase(f.store.Showcases(), f.store.Movements(), products, zerolog.Nop())
}

// countingProducts cuenta búsquedas y permite forzar errores por ID.
type countingProducts struct {
	repository.ProductRepository
	fail  map[string]error
	calls map[string]int
}

func (c *countingProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	c.calls[id]++
	if err, ok := c.fail[id]; ok {
		return nil, err
	}
	return c.ProductRepository.GetByID(ctx, id)
}

type brokenShowcases struct{ repository.ShowcaseRepository }

func (brokenShowcases) List(context.Context, repository.ShowcaseFilter) ([]*entity.Showcase, error) {
	return nil, errors.New("conexión rechazada")
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestGetShowcaseHistory_EscenarioB(t *testing.T) {
	f := newFixture(t)
	f.showcase(t, "S", "d1", day(5))
	f.movement(t, "m1", "S", "A", -5, day(5))
	f.movement(t, "m2", "S", "B", -2, day(5))

	list, err := f.history(nil).GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	sum := list[0]
	assert.Equal(t, "S", sum.Showcase.ID)
	assert.Equal(t, 7, sum.TotalPieces)
	assert.Equal(t, 2, sum.TotalProducts)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromInt(6000)), "total %s", sum.TotalValue)
}

func TestGetShowcaseHistory_OmiteVitrinasVaciasYNoResueltas(t *testing.T) {
	f := newFixture(t)
	f.showcase(t, "vacia", "d1", day(1))
	f.showcase(t, "fantasma", "d1", day(2))
	f.movement(t, "m1", "fantasma", "no-existe", -1, day(2))
	f.showcase(t, "mixta", "d1", day(3))
	f.movement(t, "m2", "mixta", "no-existe", -4, day(3))
	f.movement(t, "m3", "mixta", "C", -2, day(3))

	list, err := f.history(nil).GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	sum := list[0]
	assert.Equal(t, "mixta", sum.Showcase.ID)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, "C", sum.Items[0].Product.ID)
	assert.Equal(t, 2, sum.TotalPieces)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromInt(600)), "usa el costo si no hay precio de venta")
}

func TestGetShowcaseHistory_ErrorDeProductoSoloOmiteLaLinea(t *testing.T) {
	f := newFixture(t)
	f.showcase(t, "S1", "d1", day(1))
	f.movement(t, "m1", "S1", "A", -1, day(1))
	f.movement(t, "m2", "S1", "B", -1, day(1))
	f.showcase(t, "S2", "d1", day(2))
	f.movement(t, "m3", "S2", "B", -3, day(2))
	f.movement(t, "m4", "S2", "A", -2, day(2))

	products := &countingProducts{
		ProductRepository: f.store.Products(),
		fail:              map[string]error{"B": errors.New("timeout")},
		calls:             map[string]int{},
	}
	list, err := f.history(products).GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, sum := range list {
		require.Len(t, sum.Items, 1)
		assert.Equal(t, "A", sum.Items[0].Product.ID)
	}
	assert.Equal(t, 1, products.calls["A"], "las búsquedas se memorizan durante la llamada")
	assert.Equal(t, 1, products.calls["B"])
}

func TestGetShowcaseHistory_FiltroDeFechas(t *testing.T) {
	f := newFixture(t)
	for i, d := range []int{1, 10, 20, 31} {
		id := []string{"S01", "S10", "S20", "S31"}[i]
		f.showcase(t, id, "d1", day(d))
		f.movement(t, "m-"+id, id, "A", -1, day(d))
	}
	start, end := day(10), day(20)

	list, err := f.history(nil).GetShowcaseHistory(f.ctx, "d1", &start, &end)
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.Showcase.ID)
	}
	assert.Equal(t, []string{"S20", "S10"}, ids, "bordes inclusivos, más reciente primero")
}

func TestGetShowcaseHistory_SoloDelDistribuidorEIdempotente(t *testing.T) {
	f := newFixture(t)
	f.showcase(t, "S1", "d1", day(1))
	f.movement(t, "m1", "S1", "A", -1, day(1))
	f.showcase(t, "S2", "d2", day(2))
	f.movement(t, "m2", "S2", "B", -1, day(2))
	f.showcase(t, "S3", "d1", day(3))
	f.movement(t, "m3", "S3", "C", -1, day(3))

	uc := f.history(nil)
	first, err := uc.GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)
	second, err := uc.GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, "S3", first[0].Showcase.ID)
	assert.Equal(t, "S1", first[1].Showcase.ID)
	assert.Equal(t, first, second)
}

func TestGetShowcaseHistory_FalloDeConsultaEsFatal(t *testing.T) {
	f := newFixture(t)
	uc := showcase.NewHistoryUseCase(brokenShowcases{f.store.Showcases()}, f.store.Movements(), f.store.Products(), zerolog.Nop())

	_, err := uc.GetShowcaseHistory(f.ctx, "d1", nil, nil)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestGetShowcaseHistory_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	uc := f.history(nil)

	_, err := uc.GetShowcaseHistory(f.ctx, "", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	start, end := day(20), day(10)
	_, err = uc.GetShowcaseHistory(f.ctx, "d1", &start, &end)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetShowcaseHistory_SinVitrinasDevuelveListaVacia(t *testing.T) {
	f := newFixture(t)
	list, err := f.history(nil).GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetShowcase_DevuelveVitrinaAunqueEsteVacia(t *testing.T) {
	f := newFixture(t)
	f.showcase(t, "vacia", "d1", day(1))
	uc := f.history(nil)

	sum, err := uc.GetShowcase(f.ctx, "vacia")
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.True(t, sum.TotalValue.IsZero())

	_, err = uc.GetShowcase(f.ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
