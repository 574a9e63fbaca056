// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the example REST API.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized]
// for 401). A 400 carrying validation errors additionally wraps
// validators.ValidationErrors, reachable with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-service-template/models"
)

// ServerAdapter talks to the API server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, user models.User) error

	// Version returns the server version.
	Version(ctx context.Context) (string, error)

	// ListExamples fetches one page (1-based) of example items.
	ListExamples(ctx context.Context, page int) (models.ExampleListResponse, error)

	// GetExample fetches one item.
	GetExample(ctx context.Context, id int64) (models.ExampleResponse, error)

	// CreateExample stores a new item.
	CreateExample(ctx context.Context, req models.ExampleCreateRequest) (models.ExampleResponse, error)

	// UpdateExample changes the provided fields of an item.
	UpdateExample(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.ExampleResponse, error)

	// DeleteExample removes an item.
	DeleteExample(ctx context.Context, id int64) error
}
