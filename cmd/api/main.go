package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	"github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/joyeria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/joyeria-api/internal/interfaces/http"
	"github.com/jhoicas/joyeria-api/pkg/config"
	"github.com/jhoicas/joyeria-api/pkg/logger"
)

// repos puertos de persistencia del backend elegido por STORE_DRIVER.
type repos struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	showcases  repository.ShowcaseRepository
	movements  repository.InventoryMovementRepository
	tx         inventory.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	// run devuelve el error en lugar de terminar el proceso: los defers (pool) se ejecutan.
	if err := run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("la aplicación terminó con error")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	var r repos
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		r = repos{
			products:   store.Products(),
			categories: store.Categories(),
			users:      store.Users(),
			showcases:  store.Showcases(),
			movements:  store.Movements(),
			tx:         store.TxRunner(),
		}
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		if cfg.Seed.AdminEmail != "" {
			admin, _, err := auth.EnsureAdmin(ctx, r.users, auth.AdminSeed{
				Email:    cfg.Seed.AdminEmail,
				Password: cfg.Seed.AdminPassword,
				Name:     cfg.Seed.AdminName,
			})
			if err != nil {
				return fmt.Errorf("crear administrador inicial: %w", err)
			}
			log.Info().Str("email", admin.Email).Msg("administrador inicial disponible")
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return fmt.Errorf("aplicar migraciones: %w", err)
			}
			log.Info().Strs("files", applied).Msg("migraciones aplicadas")
		}
		r = repos{
			products:   postgres.NewProductRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			users:      postgres.NewUserRepository(pool),
			showcases:  postgres.NewShowcaseRepository(pool),
			movements:  postgres.NewInventoryMovementRepository(pool),
			tx:         postgres.NewTxRunner(pool),
		}
	}

	registerMovementUC := inventory.NewRegisterMovementUseCase(
		r.tx, r.movements, r.products, r.showcases,
		inventory.LedgerOptions{RejectZeroQuantity: cfg.Ledger.RejectZeroQuantity},
		log.Component("ledger"),
	)
	stockUC := inventory.NewStockUseCase(r.movements, r.products)
	historyUC := showcase.NewHistoryUseCase(r.showcases, r.movements, r.products, log.Component("showcase_history"))
	dispatchUC := showcase.NewDispatchUseCase(r.tx, registerMovementUC, r.products, r.users, log.Component("showcase_dispatch"))

	// PDF: planilla de la vitrina para el distribuidor
	statementUC := showcase.NewStatementUseCase(historyUC, r.users, infrapdf.NewMarotoStatementGenerator(cfg.App.StoreName))

	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Joyería API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        usecase.NewProductUseCase(r.products, r.categories),
		CategoryUC:       usecase.NewCategoryUseCase(r.categories),
		UserUC:           usecase.NewUserUseCase(r.users),
		RegisterMovement: registerMovementUC,
		Stock:            stockUC,
		Dispatch:         dispatchUC,
		History:          historyUC,
		Statement:        statementUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}
