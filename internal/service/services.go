// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/store"
)

type Services struct {
	ExampleService ExampleService
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires the business layer on top of storages. The example
// service is decorated as validation -> cache (when configured) -> storage.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	exampleService := NewExampleService(storages.ExampleRepository, logger)
	if storages.ExampleCache != nil {
		exampleService = NewExampleCachingService(storages.ExampleCache).Wrap(exampleService)
	}
	exampleService = NewExampleValidationService().Wrap(exampleService)

	return &Services{
		ExampleService: exampleService,
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.DB, storages.ExampleCache),
	}, nil
}
