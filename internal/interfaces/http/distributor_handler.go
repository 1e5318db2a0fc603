package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
)

// DistributorHandler listado de distribuidores e historial de sus vitrinas.
type DistributorHandler struct {
	users   *usecase.UserUseCase
	history *showcase.HistoryUseCase
}

// NewDistributorHandler construye el handler.
func NewDistributorHandler(users *usecase.UserUseCase, history *showcase.HistoryUseCase) *DistributorHandler {
	return &DistributorHandler{users: users, history: history}
}

// List godoc
// @Summary      Listar distribuidores
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/distributors [get]
func (h *DistributorHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.users.ListDistributors(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ShowcaseHistory godoc
// @Summary      Historial de vitrinas de un distribuidor
// @Description  Vitrinas más recientes primero. Las vitrinas sin piezas resolubles no aparecen.
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del distribuidor"
// @Param        start  query  string  false  "Desde (AAAA-MM-DD o RFC3339)"
// @Param        end    query  string  false  "Hasta, inclusive"
// @Success      200  {object}  dto.ShowcaseHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id}/showcases [get]
func (h *DistributorHandler) ShowcaseHistory(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c, "start", "end")
	if err != nil {
		return respondError(c, err)
	}
	distributorID := c.Params("id")
	list, err := h.history.GetShowcaseHistory(c.UserContext(), distributorID, start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(showcase.ToHistoryResponse(distributorID, list))
}
