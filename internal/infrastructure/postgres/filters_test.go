package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

func TestMovementQuery_SinFiltros(t *testing.T) {
	sql, args, err := movementQuery(repository.MovementFilter{}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, product_id, quantity, reason, showcase_id, created_by, created_at FROM inventory_movements ORDER BY created_at DESC, seq DESC",
		sql)
	assert.Empty(t, args)
}

func TestMovementQuery_TodosLosFiltros(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	sql, args, err := movementQuery(repository.MovementFilter{
		ProductID:   "p1",
		ShowcaseIDs: []string{"s1", "s2"},
		From:        &from,
		To:          &to,
		Limit:       20,
		Offset:      40,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE product_id = $1 AND showcase_id IN ($2,$3) AND created_at >= $4 AND created_at <= $5")
	assert.Contains(t, sql, "LIMIT 20 OFFSET 40")
	assert.Equal(t, []any{"p1", "s1", "s2", from, to}, args)
}

func TestShowcaseQuery_RangoInclusivo(t *testing.T) {
	from := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	sql, args, err := showcaseQuery(repository.ShowcaseFilter{DistributorID: "d1", From: &from}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, code, distributor_id, created_at FROM showcases WHERE distributor_id = $1 AND created_at >= $2 ORDER BY created_at DESC, id DESC",
		sql)
	assert.Equal(t, []any{"d1", from}, args)
}

func TestSumByProductQuery(t *testing.T) {
	sql, args, err := sumByProductQuery([]string{"a", "b"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT product_id, COALESCE(SUM(quantity), 0) AS quantity FROM inventory_movements WHERE product_id IN ($1,$2) GROUP BY product_id",
		sql)
	assert.Equal(t, []any{"a", "b"}, args)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	require.NotNil(t, nullIfEmpty("x"))
	assert.Equal(t, "x", derefString(nullIfEmpty("x")))
}
