// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/service"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

// Handler serves the REST API. Build the router with [Handler.Init].
type Handler struct {
	services *service.Services

	// admin is mounted under /admin when non-nil.
	admin http.Handler

	debug          bool
	allowedOrigins []string
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	router *chi.Mux

	schemaOnce sync.Once
	schema     *openapi3.T
	schemaErr  error

	logger *logger.Logger
}

// NewHandler creates an HTTP handler. admin may be nil, in which case the
// admin pages are not mounted.
func NewHandler(services *service.Services, admin http.Handler, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		admin:          admin,
		debug:          cfg.App.Debug,
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
