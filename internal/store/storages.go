// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every repository of the service together with the
// connections backing them.
type Storages struct {
	DB                *DB
	ExampleRepository ExampleRepository
	UserRepository    UserRepository

	// ExampleCache is nil when no Redis URL is configured.
	ExampleCache ExampleCache

	redis redis.UniversalClient
}

// NewStorages initialises the storage layer:
//  1. Opens the database named by cfg.DB.DSN (PostgreSQL or SQLite).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Connects to Redis when cfg.Cache.RedisURL is set.
//  4. Wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := NewStoragesFromDB(db, logger)

	if cfg.Cache.RedisURL != "" {
		client, err := NewRedisClient(ctx, cfg.Cache.RedisURL, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		storages.redis = client
		storages.ExampleCache = NewExampleCache(client, cfg.Cache.TTL)
	}

	return storages, nil
}

// NewStoragesFromDB wires the repositories around an already migrated
// database, without a cache.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                db,
		ExampleRepository: NewExampleRepository(db, logger),
		UserRepository:    NewUserRepository(db, logger),
	}
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
