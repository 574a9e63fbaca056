// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-service-template/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ExampleRepository persists example items.
type ExampleRepository interface {
	// Create inserts a new item and returns it with id and timestamps set.
	Create(ctx context.Context, example models.Example) (models.Example, error)
	// Get returns the item with the given id or [ErrExampleNotFound].
	Get(ctx context.Context, id int64) (models.Example, error)
	// List returns one window of items, newest first.
	List(ctx context.Context, limit, offset uint64) ([]models.Example, error)
	// Count returns the total number of items.
	Count(ctx context.Context) (int, error)
	// Update saves every field of example and refreshes UpdatedAt.
	Update(ctx context.Context, example models.Example) (models.Example, error)
	// Delete removes the item or returns [ErrExampleNotFound].
	Delete(ctx context.Context, id int64) error
	// Search returns the items matching filter, newest first.
	Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// ExampleCache keeps recently read items. Get returns [ErrCacheMiss] when
// the item is absent.
type ExampleCache interface {
	Get(ctx context.Context, id int64) (models.Example, error)
	Set(ctx context.Context, example models.Example) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
