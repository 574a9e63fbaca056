// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/internal/utils"
	"github.com/MKhiriev/go-service-template/models"
)

// ExamplePageSize is the number of items returned per listing page.
const ExamplePageSize = 20

type exampleService struct {
	exampleRepository store.ExampleRepository
	pageSize          int

	logger *logger.Logger
}

func NewExampleService(exampleRepository store.ExampleRepository, logger *logger.Logger) ExampleService {
	return &exampleService{
		exampleRepository: exampleRepository,
		pageSize:          ExamplePageSize,
		logger:            logger,
	}
}

func (s *exampleService) Create(ctx context.Context, req models.ExampleCreateRequest) (models.Example, error) {
	created, err := s.exampleRepository.Create(ctx, req.ToExample())
	if err != nil {
		return models.Example{}, fmt.Errorf("error creating example item: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Msg("example item created")
	return created, nil
}

func (s *exampleService) Get(ctx context.Context, id int64) (models.Example, error) {
	return s.exampleRepository.Get(ctx, id)
}

// List counts the items first so that next/previous can be derived:
// next is set iff the page is before the last one, previous iff page > 1.
// Pages past the end yield an empty result list without querying rows;
// comparing against the last page number keeps huge page values from
// overflowing the offset.
func (s *exampleService) List(ctx context.Context, page int, baseURL string) (models.ExampleListResponse, error) {
	if page < 1 {
		return models.ExampleListResponse{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	count, err := s.exampleRepository.Count(ctx)
	if err != nil {
		return models.ExampleListResponse{}, fmt.Errorf("error counting example items: %w", err)
	}

	response := models.ExampleListResponse{
		Count:   count,
		Results: []models.ExampleResponse{},
	}

	lastPage := (count + s.pageSize - 1) / s.pageSize
	if page <= lastPage {
		offset := uint64(page-1) * uint64(s.pageSize)
		items, err := s.exampleRepository.List(ctx, uint64(s.pageSize), offset)
		if err != nil {
			return models.ExampleListResponse{}, fmt.Errorf("error listing example items: %w", err)
		}
		for _, item := range items {
			response.Results = append(response.Results, models.NewExampleResponse(item))
		}
	}

	if page < lastPage {
		next, err := utils.WithPage(baseURL, page+1)
		if err != nil {
			return models.ExampleListResponse{}, err
		}
		response.Next = &next
	}
	if page > 1 {
		previous, err := utils.WithPage(baseURL, page-1)
		if err != nil {
			return models.ExampleListResponse{}, err
		}
		response.Previous = &previous
	}

	return response, nil
}

// Update always saves, so updated_at moves even when req carries no fields.
func (s *exampleService) Update(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.Example, error) {
	example, err := s.exampleRepository.Get(ctx, id)
	if err != nil {
		return models.Example{}, err
	}

	req.Apply(&example)

	updated, err := s.exampleRepository.Update(ctx, example)
	if err != nil {
		return models.Example{}, fmt.Errorf("error updating example item %d: %w", id, err)
	}

	return updated, nil
}

func (s *exampleService) Delete(ctx context.Context, id int64) error {
	if err := s.exampleRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("example item deleted")
	return nil
}

func (s *exampleService) Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	return s.exampleRepository.Search(ctx, filter)
}
