package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productColumns = []string{"id", "category_id", "code", "name", "cost_price", "selling_price", "image_url", "created_at", "updated_at"}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

type productRow struct {
	ID           string              `db:"id"`
	CategoryID   *string             `db:"category_id"`
	Code         string              `db:"code"`
	Name         string              `db:"name"`
	CostPrice    decimal.NullDecimal `db:"cost_price"`
	SellingPrice decimal.NullDecimal `db:"selling_price"`
	ImageURL     *string             `db:"image_url"`
	CreatedAt    time.Time           `db:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at"`
}

func (p productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:           p.ID,
		CategoryID:   derefString(p.CategoryID),
		Code:         p.Code,
		Name:         p.Name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		ImageURL:     derefString(p.ImageURL),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// Create persiste un nuevo producto. ErrDuplicate si el código ya existe.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	sql, args, err := psql.Insert("products").
		Columns(productColumns...).
		Values(p.ID, nullIfEmpty(p.CategoryID), p.Code, p.Name, p.CostPrice, p.SellingPrice,
			nullIfEmpty(p.ImageURL), p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "id", id)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.getOne(ctx, "code", code)
}

func (r *ProductRepo) getOne(ctx context.Context, column, value string) (*entity.Product, error) {
	sql, args, err := psql.Select(productColumns...).From("products").Where(column+" = ?", value).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by %s: %w", column, err)
	}
	return row.toEntity(), nil
}

// Update actualiza nombre, categoría, precios e imagen. El código no cambia.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	sql, args, err := psql.Update("products").
		Set("category_id", nullIfEmpty(p.CategoryID)).
		Set("name", p.Name).
		Set("cost_price", p.CostPrice).
		Set("selling_price", p.SellingPrice).
		Set("image_url", nullIfEmpty(p.ImageURL)).
		Set("updated_at", p.UpdatedAt).
		Where("id = ?", p.ID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}
	cmd, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	q := psql.Select(productColumns...).From("products").OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
