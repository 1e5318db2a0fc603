package showcase

import (
	"context"
	"fmt"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// StatementUseCase genera la planilla PDF de una vitrina para el distribuidor.
type StatementUseCase struct {
	history   *HistoryUseCase
	userRepo  repository.UserRepository
	generator StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	history *HistoryUseCase,
	userRepo repository.UserRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{history: history, userRepo: userRepo, generator: generator}
}

// ShowcaseStatementPDF carga la vitrina y devuelve (pdfBytes, filename).
func (uc *StatementUseCase) ShowcaseStatementPDF(ctx context.Context, showcaseID string) ([]byte, string, error) {
	sum, err := uc.history.GetShowcase(ctx, showcaseID)
	if err != nil {
		return nil, "", err
	}
	return uc.Render(ctx, sum)
}

// Render genera el PDF de un resumen ya cargado (el handler lo usa tras verificar acceso).
func (uc *StatementUseCase) Render(ctx context.Context, sum *inventory.ShowcaseSummary) ([]byte, string, error) {
	// ── 1. Distribuidor ───────────────────────────────────────────────────────
	distributor, err := uc.userRepo.GetByID(ctx, sum.Showcase.DistributorID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: obtener distribuidor: %w", domain.ErrPersistence, err)
	}
	if distributor == nil {
		return nil, "", fmt.Errorf("%w: distribuidor %s", domain.ErrNotFound, sum.Showcase.DistributorID)
	}

	// ── 2. PDF ────────────────────────────────────────────────────────────────
	pdfBytes, err := uc.generator.GenerateShowcaseStatement(ctx, sum, distributor)
	if err != nil {
		return nil, "", fmt.Errorf("planilla: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("vitrina-%s.pdf", sum.Showcase.Code), nil
}
