package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: la tabla no admite UPDATE/DELETE (ver trigger en la migración).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

type movementRow struct {
	ID         string    `db:"id"`
	ProductID  string    `db:"product_id"`
	Quantity   int       `db:"quantity"`
	Reason     string    `db:"reason"`
	ShowcaseID *string   `db:"showcase_id"`
	CreatedBy  *string   `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m movementRow) toEntity() *entity.InventoryMovement {
	return &entity.InventoryMovement{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		Reason:     m.Reason,
		ShowcaseID: derefString(m.ShowcaseID),
		CreatedBy:  derefString(m.CreatedBy),
		CreatedAt:  m.CreatedAt,
	}
}

// Create persiste un movimiento.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	sql, args, err := psql.Insert("inventory_movements").
		Columns(movementColumns...).
		Values(m.ID, m.ProductID, m.Quantity, m.Reason, nullIfEmpty(m.ShowcaseID), nullIfEmpty(m.CreatedBy), m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *InventoryMovementRepo) GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error) {
	if !isUUID(id) {
		return nil, nil
	}
	sql, args, err := psql.Select(movementColumns...).From("inventory_movements").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get movement: %w", err)
	}
	var row movementRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return row.toEntity(), nil
}

// List movimientos filtrados, más recientes primero.
func (r *InventoryMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	if (f.ProductID != "" && !isUUID(f.ProductID)) || (f.ShowcaseID != "" && !isUUID(f.ShowcaseID)) {
		return []*entity.InventoryMovement{}, nil
	}
	sql, args, err := movementQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movements: %w", err)
	}
	var rows []movementRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*entity.InventoryMovement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// SumByProduct Σ quantity por producto, calculado por la base en cada llamada.
func (r *InventoryMovementRepo) SumByProduct(ctx context.Context, productIDs []string) (map[string]int, error) {
	sql, args, err := sumByProductQuery(productIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sum by product: %w", err)
	}
	var rows []struct {
		ProductID string `db:"product_id"`
		Quantity  int    `db:"quantity"`
	}
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("sum by product: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.ProductID] = row.Quantity
	}
	return out, nil
}
