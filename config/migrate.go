package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"tienda-backend/utils"
)

// runMigrations applies any pending versioned migrations from the
// migrations directory before the pool is handed to the repositories.
func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath, err := filepath.Abs(AppConfig.MigrationsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve migration path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationPath,
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Println("Database migrations applied (or already up to date)")
	return nil
}

// SeedAdmin ensures the admin account from the environment exists. It only
// inserts when the username is absent, so rotating ADMIN_PASSWORD does not
// touch an existing row.
func SeedAdmin() error {
	if AppConfig.AdminUsername == "" || AppConfig.AdminPassword == "" {
		log.Println("Warning: ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	ctx := context.Background()

	var exists bool
	err := DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)",
		AppConfig.AdminUsername,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin existence: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := utils.HashPassword(AppConfig.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = DB.Exec(ctx,
		"INSERT INTO admins (id, username, password, role) VALUES ($1, $2, $3, 'ADMIN')",
		uuid.NewString(), AppConfig.AdminUsername, hashed,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Printf("Seeded admin account %q", AppConfig.AdminUsername)
	return nil
}
