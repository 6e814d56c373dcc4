package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Open abre el pool con pgx (Postgres) o modernc (SQLite) y hace ping.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// una sola conexión: ":memory:" es por conexión y sqlite serializa escrituras igual
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema es compatible con Postgres y SQLite. Las fechas van como texto RFC3339.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		key           TEXT PRIMARY KEY,
		owner_id      TEXT NOT NULL,
		name          TEXT NOT NULL,
		species       TEXT NOT NULL,
		gender        TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT '',
		age           TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		weight        TEXT NOT NULL DEFAULT '',
		pet_condition TEXT NOT NULL DEFAULT '',
		feature       TEXT NOT NULL DEFAULT '',
		contact       TEXT NOT NULL DEFAULT '',
		location      TEXT NOT NULL DEFAULT '',
		image_front   TEXT NOT NULL DEFAULT '',
		image_side    TEXT NOT NULL DEFAULT '',
		image_free    TEXT NOT NULL DEFAULT '',
		image_owner   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS listings_owner_idx ON listings (owner_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		uid           TEXT PRIMARY KEY,
		nickname      TEXT NOT NULL,
		creation_date TEXT NOT NULL
	)`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
