package repository

import (
	"context"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para perfiles de usuario (DIP).
type UserRepository interface {
	// Create inserta el perfil; ErrDuplicate si el email ya existe.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, error)
}
