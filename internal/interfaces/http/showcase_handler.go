package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/application/showcase"
)

// ShowcaseHandler despacho, consulta y planilla PDF de vitrinas.
type ShowcaseHandler struct {
	dispatch  *showcase.DispatchUseCase
	history   *showcase.HistoryUseCase
	statement *showcase.StatementUseCase
}

// NewShowcaseHandler construye el handler.
func NewShowcaseHandler(
	dispatch *showcase.DispatchUseCase,
	history *showcase.HistoryUseCase,
	statement *showcase.StatementUseCase,
) *ShowcaseHandler {
	return &ShowcaseHandler{dispatch: dispatch, history: history, statement: statement}
}

// Dispatch godoc
// @Summary      Despachar vitrina
// @Description  Crea la vitrina y registra una salida por pieza, en una sola transacción.
// @Tags         showcases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchShowcaseRequest  true  "distributor_id e items"
// @Success      201   {object}  dto.ShowcaseSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/showcases [post]
func (h *ShowcaseHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchShowcaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	items := make([]showcase.DispatchItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, showcase.DispatchItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	sum, err := h.dispatch.DispatchShowcase(c.UserContext(), showcase.DispatchInput{
		DistributorID: in.DistributorID,
		Items:         items,
		UserID:        GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(showcase.ToSummaryResponse(*sum))
}

// GetByID godoc
// @Summary      Obtener vitrina
// @Tags         showcases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la vitrina"
// @Success      200  {object}  dto.ShowcaseSummaryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/showcases/{id} [get]
func (h *ShowcaseHandler) GetByID(c *fiber.Ctx) error {
	sum, err := h.history.GetShowcase(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !canSeeDistributor(c, sum.Showcase.DistributorID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vitrina pertenece a otro distribuidor"})
	}
	return c.JSON(showcase.ToSummaryResponse(*sum))
}

// StatementPDF godoc
// @Summary      Planilla PDF de la vitrina
// @Tags         showcases
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la vitrina"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/showcases/{id}/pdf [get]
func (h *ShowcaseHandler) StatementPDF(c *fiber.Ctx) error {
	sum, err := h.history.GetShowcase(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !canSeeDistributor(c, sum.Showcase.DistributorID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la vitrina pertenece a otro distribuidor"})
	}
	pdfBytes, filename, err := h.statement.Render(c.UserContext(), sum)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
