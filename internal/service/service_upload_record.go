// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

type uploadRecordService struct {
	repository store.UploadRecordRepository
	validator  validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewUploadRecordService(repository store.UploadRecordRepository, validator validators.Validator, logger *logger.Logger) UploadRecordService {
	return &uploadRecordService{
		repository: repository,
		validator:  validator,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Save stores record with both timestamps set to the current time. All four
// filename and payload fields are required.
func (u *uploadRecordService) Save(ctx context.Context, record models.UploadRecord) (models.UploadRecord, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, record); err != nil {
		log.Debug().Err(err).Msg("invalid upload record")
		return models.UploadRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := u.now()
	record.RecordID = 0
	record.CreatedAt = now
	record.UpdatedAt = now

	saved, err := u.repository.SaveUploadRecord(ctx, record)
	if err != nil {
		return models.UploadRecord{}, fmt.Errorf("saving upload record failed: %w", err)
	}

	log.Info().Int64("record_id", saved.RecordID).Str("image_filename", saved.ImageFilename).Msg("upload record saved")
	return saved, nil
}

// List returns every record newest first, each with data URIs for the image
// and the CSV. No records yields store.ErrNoUploadRecords.
func (u *uploadRecordService) List(ctx context.Context) ([]models.UploadRecordView, error) {
	records, err := u.repository.ListUploadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing upload records failed: %w", err)
	}

	views := make([]models.UploadRecordView, 0, len(records))
	for _, record := range records {
		views = append(views, models.NewUploadRecordView(record))
	}

	return views, nil
}

func (u *uploadRecordService) ImportFiles(ctx context.Context, imagePath, csvPath string) (models.UploadRecord, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return models.UploadRecord{}, fmt.Errorf("reading image %s: %w", imagePath, err)
	}

	csv, err := os.ReadFile(csvPath)
	if err != nil {
		return models.UploadRecord{}, fmt.Errorf("reading csv %s: %w", csvPath, err)
	}

	return u.Save(ctx, models.UploadRecord{
		ImageFilename: filepath.Base(imagePath),
		ImageData:     base64.StdEncoding.EncodeToString(image),
		CSVFilename:   filepath.Base(csvPath),
		CSVData:       base64.StdEncoding.EncodeToString(csv),
	})
}
