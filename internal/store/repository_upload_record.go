// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

// uploadRecordRepository is the database/sql implementation of
// [UploadRecordRepository] over the "upload_records" table.
type uploadRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewUploadRecordRepository constructs an [UploadRecordRepository] backed by
// the provided database connection and logger.
func NewUploadRecordRepository(db *DB, logger *logger.Logger) UploadRecordRepository {
	logger.Debug().Msg("creating upload record repository")
	return &uploadRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveUploadRecord inserts record and returns it with its RecordID set.
func (u *uploadRecordRepository) SaveUploadRecord(ctx context.Context, record models.UploadRecord) (models.UploadRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUploadRecordQuery(u.builder, record)
	if err != nil {
		log.Err(err).Str("func", "uploadRecordRepository.SaveUploadRecord").Msg("failed to build query")
		return models.UploadRecord{}, err
	}

	if err = u.QueryRowContext(ctx, query, args...).Scan(&record.RecordID); err != nil {
		log.Err(err).
			Str("func", "uploadRecordRepository.SaveUploadRecord").
			Str("image_filename", record.ImageFilename).
			Str("csv_filename", record.CSVFilename).
			Msg("failed to insert upload record")
		return models.UploadRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// ListUploadRecords returns every record ordered by created_at descending.
func (u *uploadRecordRepository) ListUploadRecords(ctx context.Context) ([]models.UploadRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUploadRecordsQuery(u.builder)
	if err != nil {
		log.Err(err).Str("func", "uploadRecordRepository.ListUploadRecords").Msg("failed to build query")
		return nil, err
	}

	rows, err := u.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "uploadRecordRepository.ListUploadRecords").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.UploadRecord, 0, 50)
	for rows.Next() {
		var record models.UploadRecord
		if err := rows.Scan(
			&record.RecordID,
			&record.ImageFilename,
			&record.ImageData,
			&record.CSVFilename,
			&record.CSVData,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "uploadRecordRepository.ListUploadRecords").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		record.CreatedAt = utc(record.CreatedAt)
		record.UpdatedAt = utc(record.UpdatedAt)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "uploadRecordRepository.ListUploadRecords").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(records) == 0 {
		return nil, ErrNoUploadRecords
	}

	return records, nil
}
