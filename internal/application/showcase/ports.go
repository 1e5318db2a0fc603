package showcase

import (
	"context"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
)

// StatementPDFGenerator genera el PDF de la planilla de una vitrina.
// Lo implementa infrastructure/pdf (maroto).
type StatementPDFGenerator interface {
	GenerateShowcaseStatement(
		ctx context.Context,
		summary *inventory.ShowcaseSummary,
		distributor *entity.User,
	) ([]byte, error)
}
