package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/memory"
)

func newOpts() appinventory.LedgerOptions { return appinventory.LedgerOptions{} }

type env struct {
	ctx    context.Context
	store  *memory.Store
	ledger *appinventory.RegisterMovementUseCase
	stock  *appinventory.StockUseCase
}

func newEnv(t *testing.T, opts appinventory.LedgerOptions) *env {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "P", Code: "AN-01", Name: "Anillo", SellingPrice: decimal.NewNullDecimal(decimal.NewFromInt(100))}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "Q", Code: "AR-02", Name: "Aros"}))
	return &env{
		ctx:    ctx,
		store:  store,
		ledger: appinventory.NewRegisterMovementUseCase(store.TxRunner(), store.Movements(), store.Products(), store.Showcases(), opts, zerolog.Nop()),
		stock:  appinventory.NewStockUseCase(store.Movements(), store.Products()),
	}
}

// brokenMovements falla en cada escritura.
type brokenMovements struct{ repository.InventoryMovementRepository }

func (brokenMovements) Create(context.Context, *entity.InventoryMovement) error {
	return errors.New("disco lleno")
}

// Escenario A: +10 reposición, -3 venta → saldo 7.
func TestRecordMovement_EscenarioA(t *testing.T) {
	e := newEnv(t, appinventory.LedgerOptions{})

	_, err := e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "P", Quantity: 10, Reason: "restock"})
	require.NoError(t, err)
	_, err = e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "P", Quantity: -3, Reason: "sale"})
	require.NoError(t, err)

	bal, err := e.stock.GetBalance(e.ctx, "P")
	require.NoError(t, err)
	assert.Equal(t, 7, bal.Quantity)
}

func TestRecordMovement_AsignaIDyFecha(t *testing.T) {
	e := newEnv(t, appinventory.LedgerOptions{})

	m, err := e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "P", Quantity: 2, Reason: "  reposicao ", UserID: "adm"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())
	assert.Equal(t, "reposicao", m.Reason)
	assert.Equal(t, "adm", m.CreatedBy)

	stored, err := e.store.Movements().GetByID(e.ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.Quantity)
}

func TestRecordMovement_Errores(t *testing.T) {
	e := newEnv(t, appinventory.LedgerOptions{})

	_, err := e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{Quantity: 1, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, domain.ReasonValidation, domain.Reason(err))

	_, err = e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "P", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "nope", Quantity: 1, Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "P", Quantity: 1, Reason: "x", ShowcaseID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	movs, err := e.store.Movements().List(e.ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movs, "una entrada rechazada no deja registros")
}

func TestRecordMovement_FalloDelAlmacen(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "P", Code: "AN-01"}))
	uc := appinventory.NewRegisterMovementUseCase(store.TxRunner(), brokenMovements{store.Movements()}, store.Products(), store.Showcases(), appinventory.LedgerOptions{}, zerolog.Nop())

	_, err := uc.RecordMovement(ctx, appinventory.MovementInput{ProductID: "P", Quantity: 1, Reason: "venda"})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, domain.ReasonPersistence, domain.Reason(err))
}

func TestRecordMovement_CantidadCero(t *testing.T) {
	e := newEnv(t, appinventory.LedgerOptions{})
	m, err := e.ledger.RecordMovement(e.ctx, appinventory.MovementInput{ProductID: "P", Quantity: 0, Reason: "ajuste"})
	require.NoError(t, err)
	assert.Equal(t, inventory.MovementNeutral, inventory.Classify(m.Quantity))

	strict := newEnv(t, appinventory.LedgerOptions{RejectZeroQuantity: true})
	_, err = strict.ledger.RecordMovement(strict.ctx, appinventory.MovementInput{ProductID: "P", Quantity: 0, Reason: "ajuste"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovements_TodoONada(t *testing.T) {
	e := newEnv(t, appinventory.LedgerOptions{})

	_, err := e.ledger.RecordMovements(e.ctx, []appinventory.MovementInput{
		{ProductID: "P", Quantity: -1, Reason: "venda"},
		{ProductID: "nope", Quantity: -1, Reason: "venda"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	movs, err := e.store.Movements().List(e.ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movs)

	created, err := e.ledger.RecordMovements(e.ctx, []appinventory.MovementInput{
		{ProductID: "P", Quantity: -1, Reason: "venda"},
		{ProductID: "Q", Quantity: -2, Reason: "venda"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.True(t, created[0].CreatedAt.Equal(created[1].CreatedAt))

	_, err = e.ledger.RecordMovements(e.ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovementFromRequest_TipoDerivado(t *testing.T) {
	e := newEnv(t, appinventory.LedgerOptions{})

	resp, err := e.ledger.RecordMovementFromRequest(e.ctx, "adm", dtoRequest("P", -4))
	require.NoError(t, err)
	assert.Equal(t, -4, resp.Quantity)
	assert.Equal(t, 4, resp.DisplayQuantity)
	assert.Equal(t, "saida", resp.Type)
	assert.WithinDuration(t, time.Now(), resp.CreatedAt, time.Minute)
}
