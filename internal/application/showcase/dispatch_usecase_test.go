package showcase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

type failingTx struct{ err error }

func (f failingTx) Run(context.Context, func(repository.InventoryMovementRepository, repository.ShowcaseRepository) error) error {
	return f.err
}

func (f *fixture) dispatcher(tx appinventory.TxRunner) *showcase.DispatchUseCase {
	if tx == nil {
		tx = f.store.TxRunner()
	}
	ledger := appinventory.NewRegisterMovementUseCase(
		f.store.TxRunner(), f.store.Movements(), f.store.Products(), f.store.Showcases(),
		appinventory.LedgerOptions{}, zerolog.Nop(),
	)
	return showcase.NewDispatchUseCase(tx, ledger, f.store.Products(), f.store.Users(), zerolog.Nop())
}

func TestDispatchShowcase_CreaVitrinaYSalidas(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Movements().Create(f.ctx, &entity.InventoryMovement{ID: "r1", ProductID: "A", Quantity: 10, Reason: entity.ReasonRestock, CreatedAt: day(1)}))

	sum, err := f.dispatcher(nil).DispatchShowcase(f.ctx, showcase.DispatchInput{
		DistributorID: "d1",
		UserID:        "adm",
		Items: []showcase.DispatchItem{
			{ProductID: "A", Quantity: 5},
			{ProductID: "B", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, sum.TotalPieces)
	assert.Equal(t, 2, sum.TotalProducts)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromInt(6000)))
	assert.True(t, strings.HasPrefix(sum.Showcase.Code, "VT-"), sum.Showcase.Code)

	movs, err := f.store.Movements().List(f.ctx, repository.MovementFilter{ShowcaseID: sum.Showcase.ID})
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.ReasonShowcase, m.Reason)
		assert.Equal(t, inventory.MovementExit, inventory.Classify(m.Quantity))
		assert.Equal(t, "adm", m.CreatedBy)
	}

	sums, err := f.store.Movements().SumByProduct(f.ctx, []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 5, sums["A"])

	// El historial reconstruye exactamente lo despachado.
	list, err := f.history(nil).GetShowcaseHistory(f.ctx, "d1", nil, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sum.TotalValue.String(), list[0].TotalValue.String())
}

func TestDispatchShowcase_Validaciones(t *testing.T) {
	f := newFixture(t)
	uc := f.dispatcher(nil)
	item := []showcase.DispatchItem{{ProductID: "A", Quantity: 1}}

	cases := []struct {
		name string
		in   showcase.DispatchInput
		want error
	}{
		{"sin distribuidor", showcase.DispatchInput{Items: item}, domain.ErrInvalidInput},
		{"sin piezas", showcase.DispatchInput{DistributorID: "d1"}, domain.ErrInvalidInput},
		{"distribuidor inexistente", showcase.DispatchInput{DistributorID: "zz", Items: item}, domain.ErrNotFound},
		{"usuario no distribuidor", showcase.DispatchInput{DistributorID: "adm", Items: item}, domain.ErrInvalidInput},
		{"cantidad cero", showcase.DispatchInput{DistributorID: "d1", Items: []showcase.DispatchItem{{ProductID: "A"}}}, domain.ErrInvalidInput},
		{"cantidad negativa", showcase.DispatchInput{DistributorID: "d1", Items: []showcase.DispatchItem{{ProductID: "A", Quantity: -2}}}, domain.ErrInvalidInput},
		{"producto inexistente", showcase.DispatchInput{DistributorID: "d1", Items: []showcase.DispatchItem{{ProductID: "A", Quantity: 1}, {ProductID: "X", Quantity: 1}}}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.DispatchShowcase(f.ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	list, err := f.store.Showcases().List(f.ctx, repository.ShowcaseFilter{})
	require.NoError(t, err)
	assert.Empty(t, list, "ninguna validación fallida deja vitrinas")
}

func TestDispatchShowcase_FalloDeTransaccionNoDejaRastros(t *testing.T) {
	f := newFixture(t)
	uc := f.dispatcher(failingTx{err: errors.New("deadlock")})

	_, err := uc.DispatchShowcase(f.ctx, showcase.DispatchInput{
		DistributorID: "d1",
		Items:         []showcase.DispatchItem{{ProductID: "A", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrPersistence)

	movs, err := f.store.Movements().List(f.ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestNewShowcaseCode(t *testing.T) {
	at := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "VT-20261018-3F9A2C", showcase.NewShowcaseCode(at, "3f9a2c11-0000-4000-8000-000000000000"))
	assert.Equal(t, "VT-20261018-AB", showcase.NewShowcaseCode(at, "ab"))
}
