// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose queries its version table, sqlmock rejects every unexpected call
	_, err = Migrate(context.Background(), db, config.DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := Migrate(context.Background(), db, config.DriverPostgres)
	require.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, "mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()

	applied, err := Migrate(ctx, db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	for _, table := range []string{"users", "upload_records"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	// second run is a no-op
	applied, err = Migrate(ctx, db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Zero(t, applied)
}

func TestMigrate_SQLiteRoleCheck(t *testing.T) {
	db, err := sql.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	_, err = Migrate(ctx, db, config.DriverSQLite)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO users (email, password_hash, role) VALUES ('a@example.com', 'h', 'owner')")
	assert.Error(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO users (email, password_hash) VALUES ('a@example.com', 'h')")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "INSERT INTO users (email, password_hash) VALUES ('a@example.com', 'h')")
	assert.Error(t, err, "email must be unique")
}
