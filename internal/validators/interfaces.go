// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: the error value returned when input is rejected. It
//     carries one [models.FieldError] per offending field and is rendered by
//     the HTTP layer as a 400 response body.
//
// Struct rules are declared with `validate` tags and evaluated by
// github.com/go-playground/validator/v10.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// PageValidator checks the page number of a paginated listing.
type PageValidator interface {
	ValidatePage(ctx context.Context, page int) error
}
