// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded goose SQL migrations, one directory
// per supported database dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")

	// ErrUnsupportedDriver is returned for a driver with no migration set.
	ErrUnsupportedDriver = errors.New("unsupported migration driver")
)

// Migrate applies all pending migrations for the given database/sql driver
// name ("pgx" or "sqlite3") and returns the number of applied migrations.
func Migrate(ctx context.Context, db *sql.DB, driver string) (int, error) {
	if db == nil {
		return 0, ErrNilDB
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return 0, err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, "postgres", nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
