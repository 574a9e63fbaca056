// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/migrations"
)

const (
	// readAttempts bounds how many times a read query is tried when the
	// error classifier reports a transient failure.
	readAttempts = 3

	readRetryDelay = 50 * time.Millisecond
)

// DB is a database handle bound to one SQL dialect. It carries the
// statement builder with the dialect's placeholder format and the error
// classifier used to decide whether a failed read is retried.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. postgres:// and
// postgresql:// URLs open PostgreSQL through pgx; any other DSN is handed
// to SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// openDB opens driver with dsn, lets configure tune the pool and checks
// the connection with a ping.
func openDB(ctx context.Context, driver, dsn string, log *logger.Logger, configure func(*sql.DB)) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "store.openDB").Str("driver", driver).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}
	if configure != nil {
		configure(conn)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.openDB").Str("driver", driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting %s database: %w", driver, err)
	}

	log.Info().Str("func", "store.openDB").Str("driver", driver).Msg("connected to database successfully")
	return conn, nil
}

// Migrate applies the embedded schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the database/sql driver name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// withRetry runs op until it succeeds, fails with an error the classifier
// does not consider transient, or readAttempts is exhausted.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= readAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(time.Duration(attempt) * readRetryDelay):
		}
	}

	return err
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
