package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// AdminSeed datos del administrador inicial.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// EnsureAdmin crea el administrador si no existe un perfil con ese email.
// Devuelve el perfil existente o el creado y si fue creado ahora.
func EnsureAdmin(ctx context.Context, repo repository.UserRepository, in AdminSeed) (*entity.User, bool, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, false, fmt.Errorf("%w: email del administrador requerido", domain.ErrInvalidInput)
	}
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("%w: buscar administrador: %w", domain.ErrPersistence, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, false, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("%w: crear administrador: %w", domain.ErrPersistence, err)
	}
	return user, true, nil
}
