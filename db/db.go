package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ParseDSN maps a DATABASE_URL onto a registered driver name and the DSN
// that driver expects. sqlite://path opens an embedded database file.
func ParseDSN(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite database path is empty")
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return DriverSQLite, path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	default:
		return "", "", fmt.Errorf("unsupported database url scheme in %q", redact(databaseURL))
	}
}

func Connect(databaseURL string, timeout time.Duration) (*sqlx.DB, error) {
	driver, dsn, err := ParseDSN(databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite allows one writer at a time
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database handle after ping error", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

func redact(databaseURL string) string {
	at := strings.LastIndex(databaseURL, "@")
	scheme := strings.Index(databaseURL, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return databaseURL
	}
	return databaseURL[:scheme+3] + "***" + databaseURL[at:]
}
