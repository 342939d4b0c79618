// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
)

// Storages groups all storage components into a single value that can be
// passed to the service layer.
type Storages struct {
	UserRepository         UserRepository
	UploadRecordRepository UploadRecordRepository
	TransientFileStorage   TransientFileStorage

	db *DB
}

// NewStorages initialises the storage layer:
//  1. opens a connection with the configured driver,
//  2. runs pending schema migrations via [DB.Migrate],
//  3. prepares the transient upload directory,
//  4. wires the repositories.
//
// The connection is closed again if a later step fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	files, err := NewTransientFileStorage(cfg.Files.UploadDir, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		UploadRecordRepository: NewUploadRecordRepository(db, logger),
		TransientFileStorage:   files,
		db:                     db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
