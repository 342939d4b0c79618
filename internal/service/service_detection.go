// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/adapter"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
)

// transientPrefix starts every transient upload file name.
const transientPrefix = "image"

type detectionService struct {
	files     store.TransientFileStorage
	detector  adapter.Detector
	validator validators.Validator
	names     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewDetectionService(files store.TransientFileStorage, detector adapter.Detector, validator validators.Validator, logger *logger.Logger) DetectionService {
	return &detectionService{
		files:     files,
		detector:  detector,
		validator: validator,
		names:     utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Process writes the upload to a transient file under a random name,
// forwards it to the detector and returns the detector's result.
//
// The transient file is removed on every path, including detector failures.
// Detector errors are returned wrapped so adapter.UpstreamError stays
// reachable with errors.As.
func (d *detectionService) Process(ctx context.Context, upload models.ImageUpload) (models.Detection, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, upload); err != nil {
		log.Debug().Err(err).Str("content_type", upload.ContentType).Msg("invalid image upload")
		return models.Detection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	name := d.names.Name(transientPrefix, strings.ToLower(filepath.Ext(upload.Filename)))
	log.Debug().Str("file", name).Int64("size", upload.Size).Msg("storing transient upload")

	defer func() {
		if err := d.files.Delete(context.WithoutCancel(ctx), name); err != nil {
			log.Err(err).Str("file", name).Msg("failed to delete transient upload")
		}
	}()

	if _, err := d.files.Save(ctx, name, upload.Content); err != nil {
		return models.Detection{}, fmt.Errorf("storing upload failed: %w", err)
	}

	file, err := d.files.Open(ctx, name)
	if err != nil {
		return models.Detection{}, fmt.Errorf("opening stored upload failed: %w", err)
	}
	defer file.Close()

	detection, err := d.detector.Detect(ctx, name, upload.ContentType, file)
	if err != nil {
		return models.Detection{}, fmt.Errorf("detection failed: %w", err)
	}

	return detection, nil
}
