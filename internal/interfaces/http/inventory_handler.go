package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	appinventory "github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

// InventoryHandler maneja el libro de movimientos y los saldos derivados.
type InventoryHandler struct {
	ledger *appinventory.RegisterMovementUseCase
	stock  *appinventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *appinventory.RegisterMovementUseCase, stock *appinventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, stock: stock}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Cantidad con signo: positiva entra, negativa sale. El libro es solo de inserción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity, reason, showcase_id opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.RecordMovementFromRequest(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        showcase_id  query  string  false  "Filtrar por vitrina"
// @Param        from         query  string  false  "Desde (AAAA-MM-DD o RFC3339)"
// @Param        to           query  string  false  "Hasta, inclusive"
// @Param        limit        query  int     false  "Límite"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c, "from", "to")
	if err != nil {
		return respondError(c, err)
	}
	page := parsePage(c)
	out, err := h.stock.ListMovements(c.UserContext(), repository.MovementFilter{
		ProductID:  c.Query("product_id"),
		ShowcaseID: c.Query("showcase_id"),
		From:       from,
		To:         to,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBalances godoc
// @Summary      Saldos por producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.BalanceListResponse
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	page := parsePage(c)
	out, err := h.stock.ListBalances(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBalance godoc
// @Summary      Saldo de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/balances/{productId} [get]
func (h *InventoryHandler) GetBalance(c *fiber.Ctx) error {
	b, err := h.stock.GetBalance(c.UserContext(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BalanceResponse{ProductID: b.ProductID, Quantity: b.Quantity})
}

// Stats godoc
// @Summary      Estadísticas de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde"
// @Param        to    query  string  false  "Hasta, inclusive"
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c, "from", "to")
	if err != nil {
		return respondError(c, err)
	}
	var period *inventory.Period
	if from != nil || to != nil {
		period = &inventory.Period{From: from, To: to}
	}
	s, err := h.stock.GetStats(c.UserContext(), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatsResponse{
		Entries: s.Entries,
		Exits:   s.Exits,
		Net:     s.Net,
		Count:   s.Count,
		From:    from,
		To:      to,
	})
}
