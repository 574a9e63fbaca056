// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/redis/go-redis/v9"
)

const exampleCachePrefix = "examples"

// NewRedisClient opens and pings a Redis connection for a redis:// or
// rediss:// URL.
func NewRedisClient(ctx context.Context, url string, log *logger.Logger) (redis.UniversalClient, error) {
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrInvalidCacheURL
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidCacheURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCache, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// exampleCache stores JSON encoded example items under "examples:<id>".
type exampleCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewExampleCache builds an [ExampleCache] on top of client. Entries expire
// after ttl; a non-positive ttl keeps them until they are deleted.
func NewExampleCache(client redis.UniversalClient, ttl time.Duration) ExampleCache {
	return &exampleCache{
		client: client,
		ttl:    max(ttl, 0),
	}
}

func (c *exampleCache) Get(ctx context.Context, id int64) (models.Example, error) {
	data, err := c.client.Get(ctx, exampleCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Example{}, ErrCacheMiss
	}
	if err != nil {
		return models.Example{}, fmt.Errorf("%w: %w", ErrCache, err)
	}

	var example models.Example
	if err := json.Unmarshal(data, &example); err != nil {
		// a corrupt entry is as good as a missing one
		_ = c.client.Del(ctx, exampleCacheKey(id)).Err()
		return models.Example{}, ErrCacheMiss
	}

	return example, nil
}

func (c *exampleCache) Set(ctx context.Context, example models.Example) error {
	data, err := json.Marshal(example)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}

	if err := c.client.Set(ctx, exampleCacheKey(example.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}

func (c *exampleCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, exampleCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}

func (c *exampleCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCache, err)
	}
	return nil
}

func exampleCacheKey(id int64) string {
	return exampleCachePrefix + ":" + strconv.FormatInt(id, 10)
}
