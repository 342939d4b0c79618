// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/adapter"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/store"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/validators"
)

type Services struct {
	AuthService         AuthService
	UploadRecordService UploadRecordService
	DetectionService    DetectionService
	SeedService         SeedService
}

func NewServices(storages *store.Storages, detector adapter.Detector, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator(cfg.Server.MaxUploadSize)

	authService, err := NewAuthService(storages.UserRepository, validator, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         authService,
		UploadRecordService: NewUploadRecordService(storages.UploadRecordRepository, validator, logger),
		DetectionService:    NewDetectionService(storages.TransientFileStorage, detector, validator, logger),
		SeedService:         NewSeedService(storages.UserRepository, cfg.Seed, cfg.App, logger),
	}, nil
}
