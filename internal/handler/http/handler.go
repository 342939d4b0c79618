// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
)

// Handler holds the dependencies shared by every HTTP route.
type Handler struct {
	services *service.Services

	// maxUploadSize caps the file part of an upload request; zero disables it.
	maxUploadSize int64

	allowedOrigins []string

	// exposeErrorDetails adds the internal error text to 500 responses.
	exposeErrorDetails bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, serverCfg config.Server, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		maxUploadSize:      serverCfg.MaxUploadSize,
		allowedOrigins:     serverCfg.AllowedOrigins,
		exposeErrorDetails: appCfg.IsDevelopment(),
		logger:             logger,
	}
}
