// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the wildlife
// server.
package grpc

import (
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checkable name of the account and record API.
const ServiceName = "wildlife.AccountRecordService"

// Handler is the root gRPC transport handler.
//
// It owns the health server reporting the serving status of the overall
// server ("") and of [ServiceName]. A handler instance is created once at
// startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status starts as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches every service of the handler to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown flips every status to NOT_SERVING so that health watchers see the
// server going away before connections are drained.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}
