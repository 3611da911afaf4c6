package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// Migrate applies every pending up migration for the handle's driver.
func Migrate(db *sqlx.DB) error {
	dir := "migrations/" + db.DriverName()

	src, err := iofs.New(migrationFiles, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations %s: %w", dir, err)
	}
	defer src.Close()

	var target database.Driver
	switch db.DriverName() {
	case DriverPostgres:
		target, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case DriverSQLite:
		target, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}
	if err != nil {
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, db.DriverName(), target)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	// m.Close is not called: it would close the shared *sql.DB for sqlite.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
