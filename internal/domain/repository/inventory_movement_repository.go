package repository

import (
	"context"
	"time"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para consultar el libro de movimientos.
// Campos vacíos/nil no restringen. Limit 0 = sin límite.
type MovementFilter struct {
	ProductID   string
	ShowcaseID  string
	ShowcaseIDs []string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// InventoryMovementRepository puerto de persistencia del libro de movimientos (solo inserción).
// No existe Update ni Delete: las correcciones se registran como movimientos compensatorios.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	GetByID(ctx context.Context, id string) (*entity.InventoryMovement, error)
	// List devuelve los movimientos ordenados por fecha de creación descendente.
	List(ctx context.Context, filter MovementFilter) ([]*entity.InventoryMovement, error)
	// SumByProduct suma las cantidades por producto para los IDs dados (todos si está vacío).
	SumByProduct(ctx context.Context, productIDs []string) (map[string]int, error)
}
