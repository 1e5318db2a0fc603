package inventory

import (
	"context"

	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que un despacho o una venta con varias líneas se registre completo o no se registre.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		showcaseRepo repository.ShowcaseRepository,
	) error) error
}
