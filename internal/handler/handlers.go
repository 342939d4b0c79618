// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/config"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/handler/grpc"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/handler/http"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/service"
)

// Handlers holds the transport handlers enabled by the server configuration.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured
// and the gRPC health handler when a gRPC address is configured.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Server, cfg.App, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
