// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/models"
)

// Pinger is satisfied by *sql.DB and therefore by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db    Pinger
	cache store.ExampleCache // nil when caching is disabled
}

func NewHealthService(db Pinger, cache store.ExampleCache) HealthService {
	return &healthService{db: db, cache: cache}
}

func (h *healthService) Check(ctx context.Context) (models.HealthStatus, error) {
	log := logger.FromContext(ctx)
	status := models.HealthStatus{
		Status:   models.HealthOK,
		Database: models.HealthOK,
		Cache:    models.HealthDisabled,
	}

	if h.cache != nil {
		status.Cache = models.HealthOK
		if err := h.cache.Ping(ctx); err != nil {
			log.Err(err).Str("func", "*healthService.Check").Msg("cache ping failed")
			status.Cache = models.HealthUnavailable
			status.Status = models.HealthDegraded
		}
	}

	if err := h.db.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		status.Database = models.HealthUnavailable
		status.Status = models.HealthUnavailable
		return status, ErrServiceUnhealthy
	}

	return status, nil
}
