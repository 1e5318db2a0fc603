package postgres

import (
	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var (
	movementColumns = []string{"id", "product_id", "quantity", "reason", "showcase_id", "created_by", "created_at"}
	showcaseColumns = []string{"id", "code", "distributor_id", "created_at"}
)

// movementQuery arma el SELECT del libro con los filtros presentes, más recientes primero.
func movementQuery(f repository.MovementFilter) squirrel.SelectBuilder {
	q := psql.Select(movementColumns...).From("inventory_movements")
	if f.ProductID != "" {
		q = q.Where(squirrel.Eq{"product_id": f.ProductID})
	}
	if f.ShowcaseID != "" {
		q = q.Where(squirrel.Eq{"showcase_id": f.ShowcaseID})
	}
	if len(f.ShowcaseIDs) > 0 {
		q = q.Where(squirrel.Eq{"showcase_id": f.ShowcaseIDs})
	}
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *f.To})
	}
	q = q.OrderBy("created_at DESC", "seq DESC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	return q
}

// showcaseQuery vitrinas de un distribuidor en [From, To], más recientes primero.
func showcaseQuery(f repository.ShowcaseFilter) squirrel.SelectBuilder {
	q := psql.Select(showcaseColumns...).From("showcases")
	if f.DistributorID != "" {
		q = q.Where(squirrel.Eq{"distributor_id": f.DistributorID})
	}
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *f.To})
	}
	return q.OrderBy("created_at DESC", "id DESC")
}

// sumByProductQuery Σ quantity agrupado por producto.
func sumByProductQuery(productIDs []string) squirrel.SelectBuilder {
	q := psql.Select("product_id", "COALESCE(SUM(quantity), 0) AS quantity").
		From("inventory_movements").
		GroupBy("product_id")
	if len(productIDs) > 0 {
		q = q.Where(squirrel.Eq{"product_id": productIDs})
	}
	return q
}
