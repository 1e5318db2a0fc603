package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var _ repository.ShowcaseRepository = (*ShowcaseRepo)(nil)

// ShowcaseRepo vitrinas sobre PostgreSQL (usable con pool o tx).
type ShowcaseRepo struct {
	q Querier
}

// NewShowcaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShowcaseRepository(q Querier) *ShowcaseRepo {
	return &ShowcaseRepo{q: q}
}

// Create persiste una vitrina. ErrDuplicate si el código ya existe.
func (r *ShowcaseRepo) Create(ctx context.Context, sc *entity.Showcase) error {
	sql, args, err := psql.Insert("showcases").
		Columns(showcaseColumns...).
		Values(sc.ID, sc.Code, sc.DistributorID, sc.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert showcase: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert showcase: %w", err)
	}
	return nil
}

// GetByID obtiene una vitrina; (nil, nil) si no existe.
func (r *ShowcaseRepo) GetByID(ctx context.Context, id string) (*entity.Showcase, error) {
	if !isUUID(id) {
		return nil, nil
	}
	sql, args, err := psql.Select(showcaseColumns...).From("showcases").Where("id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get showcase: %w", err)
	}
	var sc entity.Showcase
	if err := pgxscan.Get(ctx, r.q, &sc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get showcase: %w", err)
	}
	return &sc, nil
}

// List vitrinas filtradas, más recientes primero.
func (r *ShowcaseRepo) List(ctx context.Context, f repository.ShowcaseFilter) ([]*entity.Showcase, error) {
	if f.DistributorID != "" && !isUUID(f.DistributorID) {
		return []*entity.Showcase{}, nil
	}
	sql, args, err := showcaseQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list showcases: %w", err)
	}
	var list []*entity.Showcase
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list showcases: %w", err)
	}
	return list, nil
}
