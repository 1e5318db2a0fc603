package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	appinventory "github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *appinventory.RegisterMovementUseCase
	Stock            *appinventory.StockUseCase
	Dispatch         *showcase.DispatchUseCase
	History          *showcase.HistoryUseCase
	Statement        *showcase.StatementUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleDistributor)

	// Catálogo: lectura para cualquier rol, escritura solo admin
	productHandler := NewProductHandler(deps.ProductUC, deps.CategoryUC)
	products := protected.Group("/products")
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)

	categories := protected.Group("/categories")
	categories.Get("/", anyRole, productHandler.ListCategories)
	categories.Post("/", adminOnly, productHandler.CreateCategory)

	// Libro de movimientos y saldos (admin)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Stock)
	inv := protected.Group("/inventory", adminOnly)
	inv.Post("/movements", inventoryHandler.RegisterMovement)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/balances", inventoryHandler.ListBalances)
	inv.Get("/balances/:productId", inventoryHandler.GetBalance)
	inv.Get("/stats", inventoryHandler.Stats)

	// Vitrinas: el acceso del distribuidor se verifica tras cargar la vitrina
	showcaseHandler := NewShowcaseHandler(deps.Dispatch, deps.History, deps.Statement)
	showcases := protected.Group("/showcases")
	showcases.Post("/", adminOnly, showcaseHandler.Dispatch)
	showcases.Get("/:id", anyRole, showcaseHandler.GetByID)
	showcases.Get("/:id/pdf", anyRole, showcaseHandler.StatementPDF)

	// Distribuidores
	distributorHandler := NewDistributorHandler(deps.UserUC, deps.History)
	distributors := protected.Group("/distributors")
	distributors.Get("/", adminOnly, distributorHandler.List)
	distributors.Get("/:id/showcases", anyRole, RequireSelfOrAdmin("id"), distributorHandler.ShowcaseHistory)
}
