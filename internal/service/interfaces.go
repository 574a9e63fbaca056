// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ExampleServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-service-template/models"
)

// ExampleService implements the business operations of the example resource.
type ExampleService interface {
	// Create stores a new item built from req, applying request defaults.
	Create(ctx context.Context, req models.ExampleCreateRequest) (models.Example, error)
	// Get returns one item or store.ErrExampleNotFound.
	Get(ctx context.Context, id int64) (models.Example, error)
	// List returns page (1-based) of items, newest first. baseURL is the
	// absolute URL of the listing and is used to build next/previous links.
	List(ctx context.Context, page int, baseURL string) (models.ExampleListResponse, error)
	// Update applies the provided fields of req to the item with the given id.
	Update(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.Example, error)
	// Delete removes the item or returns store.ErrExampleNotFound.
	Delete(ctx context.Context, id int64) error
	// Search returns items matching filter. Used by the admin pages.
	Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error)
}

// ExampleServiceWrapper defines middleware composition for ExampleService.
// Implementations wrap an existing ExampleService to add behavior such as
// validating or caching.
type ExampleServiceWrapper interface {
	Wrap(ExampleService) ExampleService
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the backing stores are reachable.
type HealthService interface {
	// Check pings every dependency. The error is non-nil only when the
	// service cannot serve requests; a failing cache merely degrades it.
	Check(ctx context.Context) (models.HealthStatus, error)
}
