package repository

import (
	"context"
	"time"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// ShowcaseFilter filtros para listar vitrinas. From/To inclusivos sobre CreatedAt.
type ShowcaseFilter struct {
	DistributorID string
	From          *time.Time
	To            *time.Time
}

// ShowcaseRepository puerto de persistencia para vitrinas.
type ShowcaseRepository interface {
	Create(ctx context.Context, showcase *entity.Showcase) error
	GetByID(ctx context.Context, id string) (*entity.Showcase, error)
	// List devuelve las vitrinas más recientes primero.
	List(ctx context.Context, filter ShowcaseFilter) ([]*entity.Showcase, error)
}
