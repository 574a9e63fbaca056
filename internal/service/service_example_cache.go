// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/internal/store"
	"github.com/MKhiriev/go-service-template/models"
	"golang.org/x/sync/singleflight"
)

// ExampleCachingService serves Get from an ExampleCache and drops cached
// entries on Update and Delete. Concurrent misses for the same id share
// one call to the wrapped service. Cache failures are logged and never
// fail the request.
type ExampleCachingService struct {
	inner ExampleService
	cache store.ExampleCache

	group singleflight.Group
}

func NewExampleCachingService(cache store.ExampleCache) ExampleServiceWrapper {
	return &ExampleCachingService{cache: cache}
}

func (c *ExampleCachingService) Create(ctx context.Context, req models.ExampleCreateRequest) (models.Example, error) {
	return c.inner.Create(ctx, req)
}

func (c *ExampleCachingService) Get(ctx context.Context, id int64) (models.Example, error) {
	log := logger.FromContext(ctx)

	cached, err := c.cache.Get(ctx, id)
	if err == nil {
		log.Debug().Int64("id", id).Msg("example item served from cache")
		return cached, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Err(err).Str("func", "ExampleCachingService.Get").Int64("id", id).Msg("cache read failed")
	}

	result, err, _ := c.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		// the load is shared, so one caller going away must not cancel it for the rest
		loadCtx := context.WithoutCancel(ctx)
		example, err := c.inner.Get(loadCtx, id)
		if err != nil {
			return models.Example{}, err
		}
		if err := c.cache.Set(loadCtx, example); err != nil {
			log.Err(err).Str("func", "ExampleCachingService.Get").Int64("id", id).Msg("cache write failed")
		}
		return example, nil
	})
	if err != nil {
		return models.Example{}, err
	}

	return result.(models.Example), nil
}

func (c *ExampleCachingService) List(ctx context.Context, page int, baseURL string) (models.ExampleListResponse, error) {
	return c.inner.List(ctx, page, baseURL)
}

func (c *ExampleCachingService) Update(ctx context.Context, id int64, req models.ExampleUpdateRequest) (models.Example, error) {
	updated, err := c.inner.Update(ctx, id, req)
	if err != nil {
		return models.Example{}, err
	}

	c.invalidate(ctx, id)
	return updated, nil
}

func (c *ExampleCachingService) Delete(ctx context.Context, id int64) error {
	err := c.inner.Delete(ctx, id)
	if err == nil || errors.Is(err, store.ErrExampleNotFound) {
		c.invalidate(ctx, id)
	}
	return err
}

func (c *ExampleCachingService) Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	return c.inner.Search(ctx, filter)
}

func (c *ExampleCachingService) Wrap(wrapped ExampleService) ExampleService {
	c.inner = wrapped
	return c
}

func (c *ExampleCachingService) invalidate(ctx context.Context, id int64) {
	if err := c.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ExampleCachingService.invalidate").Int64("id", id).Msg("cache invalidation failed")
	}
}
