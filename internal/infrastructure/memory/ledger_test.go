package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/memory"
)

func TestTxRunner_NoAplicaSiFalla(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.TxRunner().Run(ctx, func(movRepo repository.InventoryMovementRepository, showcaseRepo repository.ShowcaseRepository) error {
		require.NoError(t, showcaseRepo.Create(ctx, &entity.Showcase{ID: "S1", DistributorID: "d1"}))
		require.NoError(t, movRepo.Create(ctx, &entity.InventoryMovement{ID: "M1", ProductID: "P", Quantity: -1, ShowcaseID: "S1"}))

		// Dentro de la tx la vitrina ya es visible.
		sc, err := showcaseRepo.GetByID(ctx, "S1")
		require.NoError(t, err)
		require.NotNil(t, sc)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	sc, err := store.Showcases().GetByID(ctx, "S1")
	require.NoError(t, err)
	assert.Nil(t, sc)
	list, err := store.Movements().List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMovementRepo_ListOrdenYFiltros(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	at := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	for _, m := range []entity.InventoryMovement{
		{ID: "1", ProductID: "P", Quantity: 5, CreatedAt: at},
		{ID: "2", ProductID: "P", Quantity: -2, ShowcaseID: "S1", CreatedAt: at},
		{ID: "3", ProductID: "Q", Quantity: 1, ShowcaseID: "S2", CreatedAt: at.Add(time.Hour)},
	} {
		m := m
		require.NoError(t, store.Movements().Create(ctx, &m))
	}

	all, err := store.Movements().List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, m := range all {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"3", "2", "1"}, ids, "más reciente primero; a igual fecha el último insertado")

	byShowcase, err := store.Movements().List(ctx, repository.MovementFilter{ShowcaseIDs: []string{"S1", "S2"}})
	require.NoError(t, err)
	assert.Len(t, byShowcase, 2)

	sums, err := store.Movements().SumByProduct(ctx, []string{"P"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"P": 3}, sums)
}
