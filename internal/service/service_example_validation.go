// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
)

// ExampleValidationService rejects malformed input before it reaches the
// wrapped service. Validation errors are returned unwrapped so callers can
// match them with errors.As(err, &validators.ValidationErrors{}).
type ExampleValidationService struct {
	inner     ExampleService
	validator validators.Validator
	pages     validators.PageValidator
}

func NewExampleValidationService() ExampleServiceWrapper {
	v := validators.NewExampleValidator()
	return &ExampleValidationService{
		validator: v,
		pages:     v.(validators.PageValidator),
	}
}

func (v *ExampleValidationService) Create(ctx context.Context, req models.ExampleCreateRequest) (models.Example, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Example{}, err
	}
	return v.inner.Create(ctx, req)
}

func (v *ExampleValidationService) Get(ctx context.Context, id int64) (models.Example, error) {
	return v.inner.Get(ctx, id)
}

func (v *ExampleValidationService) List(ctx context.Context, page int, baseURL string) (models.ExampleListResponse, error) {
	if err := v.pages.ValidatePage(ctx, page); err != nil {
		return models.ExampleListResponse{}, err
	}
	return v.inner.List(ctx, page, baseURL)
}

// Update reports a missing item before looking at the request body.
func (v *ExampleValidationService) Update(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.Example, error) {
	if _, err := v.inner.Get(ctx, id); err != nil {
		return models.Example{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Example{}, err
	}
	return v.inner.Update(ctx, id, req)
}

func (v *ExampleValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *ExampleValidationService) Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	return v.inner.Search(ctx, filter)
}

func (v *ExampleValidationService) Wrap(wrapped ExampleService) ExampleService {
	v.inner = wrapped
	return v
}
