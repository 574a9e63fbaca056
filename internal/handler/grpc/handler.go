// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service. Its serving
// status follows [service.HealthService]: SERVING while the database is
// reachable, NOT_SERVING otherwise.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ExampleServiceName is the service name reported next to the overall ("")
// status.
const ExampleServiceName = "examples"

// DefaultCheckInterval is used by WatchHealth when interval is not positive.
const DefaultCheckInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until the first check succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's gRPC services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh runs one health check and publishes the result.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Refresh").Msg("health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

// WatchHealth refreshes the status every interval until ctx is done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.Refresh(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ExampleServiceName, status)
}
