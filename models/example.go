// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ExampleNameMaxLength is the upper bound for [Example.Name], in characters.
const ExampleNameMaxLength = 255

// Example is the illustrative resource shipped with the template.
// Copy it (together with its validator, repository, service, handlers and
// admin registration) and rename it to start a new resource.
type Example struct {
	// ID is the database-assigned primary key.
	ID int64 `json:"id"`

	// Name is a short human readable label, 1..255 characters.
	Name string `json:"name"`

	// Description is optional free text. An absent description is stored
	// as an empty string, never as NULL.
	Description string `json:"description"`

	// IsActive marks whether the item is active. New items are active
	// unless the caller says otherwise.
	IsActive bool `json:"is_active"`

	// CreatedAt is set once when the row is inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Example model.
func (e Example) TableName() string {
	return "examples"
}

// VerboseName is the singular human readable name of the model.
func (e Example) VerboseName() string {
	return "Example Item"
}

// VerboseNamePlural is the plural human readable name of the model.
func (e Example) VerboseNamePlural() string {
	return "Example Items"
}

// String returns the item name.
func (e Example) String() string {
	return e.Name
}

// ExampleCreateRequest is the request body accepted when creating an item.
//
// Pointer fields distinguish "absent" from "zero": a missing name is
// reported as missing, a missing is_active defaults to true.
type ExampleCreateRequest struct {
	Name        *string `json:"name" validate:"required,min=1,max=255" doc:"Name of the item"`
	Description *string `json:"description" doc:"Optional description of the item"`
	IsActive    *bool   `json:"is_active" doc:"Whether the item should be active"`
}

// ToExample builds a new, unsaved Example applying request defaults.
func (r ExampleCreateRequest) ToExample() Example {
	example := Example{IsActive: true}
	if r.Name != nil {
		example.Name = *r.Name
	}
	if r.Description != nil {
		example.Description = *r.Description
	}
	if r.IsActive != nil {
		example.IsActive = *r.IsActive
	}
	return example
}

// ExampleUpdateRequest is the request body accepted when updating an item.
// Only non-nil fields are applied (partial update).
type ExampleUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1,max=255" doc:"Name of the item"`
	Description *string `json:"description,omitempty" doc:"Optional description of the item"`
	IsActive    *bool   `json:"is_active,omitempty" doc:"Whether the item should be active"`
}

// Apply copies every provided field of the request onto example and
// reports whether anything changed.
func (r ExampleUpdateRequest) Apply(example *Example) bool {
	changed := false
	if r.Name != nil {
		example.Name = *r.Name
		changed = true
	}
	if r.Description != nil {
		example.Description = *r.Description
		changed = true
	}
	if r.IsActive != nil {
		example.IsActive = *r.IsActive
		changed = true
	}
	return changed
}

// ExampleResponse is the public representation of an [Example].
type ExampleResponse struct {
	ID          int64  `json:"id" doc:"Unique identifier of the item"`
	Name        string `json:"name" doc:"Name of the item"`
	Description string `json:"description" doc:"Description of the item"`
	IsActive    bool   `json:"is_active" doc:"Whether the item is active"`
	CreatedAt   string `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt   string `json:"updated_at" doc:"Last update timestamp"`
}

// NewExampleResponse converts a stored model into its response form.
// Timestamps are rendered as ISO-8601 strings.
func NewExampleResponse(example Example) ExampleResponse {
	return ExampleResponse{
		ID:          example.ID,
		Name:        example.Name,
		Description: example.Description,
		IsActive:    example.IsActive,
		CreatedAt:   example.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   example.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ExampleListResponse is one page of items.
type ExampleListResponse struct {
	Count    int               `json:"count" doc:"Total number of items"`
	Next     *string           `json:"next" doc:"Next page URL"`
	Previous *string           `json:"previous" doc:"Previous page URL"`
	Results  []ExampleResponse `json:"results" doc:"List of example items"`
}

// ExampleFilter narrows an item search. Zero values mean "no constraint".
type ExampleFilter struct {
	// Query is matched case-insensitively against name and description.
	Query string

	// CreatedSince keeps items created at or after this instant.
	CreatedSince time.Time

	// UpdatedSince keeps items updated at or after this instant.
	UpdatedSince time.Time

	// Limit caps the number of returned rows; zero means no cap.
	Limit uint64
}
