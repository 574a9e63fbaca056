// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. It must be called once; the OpenAPI document is
// generated from the routes registered here.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/version/", h.getServerVersion)
		r.Get("/health/", h.getHealth)
		r.Get("/schema/", h.getOpenAPISchema)
		r.Get("/docs/", h.getSwaggerUI)

		r.Route("/examples", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.listExamples)
			r.Post("/", h.createExample)
			r.Get("/{id}/", h.getExample)
			r.Put("/{id}/", h.updateExample)
			r.Patch("/{id}/", h.updateExample)
			r.Delete("/{id}/", h.deleteExample)
		})
	})

	if h.admin != nil {
		router.Mount("/admin", h.admin)
	}

	h.router = router
	return router
}
