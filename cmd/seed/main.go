// seed aplica las migraciones y crea el administrador inicial en PostgreSQL.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*, SEED_ADMIN_EMAIL,
// SEED_ADMIN_PASSWORD, SEED_ADMIN_NAME).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	"github.com/jhoicas/joyeria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/joyeria-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	for _, f := range applied {
		fmt.Printf("Migración aplicada: %s\n", f)
	}

	admin, created, err := auth.EnsureAdmin(ctx, postgres.NewUserRepository(pool), auth.AdminSeed{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     cfg.Seed.AdminName,
	})
	if err != nil {
		return fmt.Errorf("administrador: %w", err)
	}
	if created {
		fmt.Printf("Administrador creado: %s (%s)\n", admin.Email, admin.ID)
	} else {
		fmt.Printf("Administrador ya existente: %s\n", admin.Email)
	}
	return nil
}
