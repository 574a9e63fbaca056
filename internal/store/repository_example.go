// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/mattn/go-sqlite3"
)

// exampleRepository is the SQL implementation of [ExampleRepository]. It
// works against the "examples" table on both PostgreSQL and SQLite; the
// statement builder of the embedded [*DB] supplies the placeholder style.
//
// Timestamps are assigned here, in UTC: CreatedAt once on insert and
// UpdatedAt on every save.
type exampleRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewExampleRepository constructs an [ExampleRepository] backed by db.
func NewExampleRepository(db *DB, logger *logger.Logger) ExampleRepository {
	logger.Debug().Msg("creating example repository")
	return &exampleRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *exampleRepository) Create(ctx context.Context, example models.Example) (models.Example, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	example.CreatedAt, example.UpdatedAt = now, now

	query, args, err := buildInsertExampleQuery(r.builder, example)
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Create").Msg("failed to build query")
		return models.Example{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanExample(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Create").Msg("failed to insert example")
		return models.Example{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *exampleRepository) Get(ctx context.Context, id int64) (models.Example, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetExampleQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Get").Msg("failed to build query")
		return models.Example{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var example models.Example
	err = r.withRetry(ctx, func() error {
		var scanErr error
		example, scanErr = scanExample(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Example{}, ErrExampleNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Get").Int64("id", id).Msg("failed to get example")
		return models.Example{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return example, nil
}

func (r *exampleRepository) List(ctx context.Context, limit, offset uint64) ([]models.Example, error) {
	query, args, err := buildListExamplesQuery(r.builder, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "exampleRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExamples(ctx, "exampleRepository.List", query, args)
}

func (r *exampleRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountExamplesQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Count").Msg("failed to count examples")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *exampleRepository) Update(ctx context.Context, example models.Example) (models.Example, error) {
	log := logger.FromContext(ctx)

	example.UpdatedAt = r.now()

	query, args, err := buildUpdateExampleQuery(r.builder, example)
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Update").Msg("failed to build query")
		return models.Example{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanExample(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Example{}, ErrExampleNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Update").Int64("id", example.ID).Msg("failed to update example")
		return models.Example{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *exampleRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExampleQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "exampleRepository.Delete").Int64("id", id).Msg("failed to delete example")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExampleNotFound
	}

	return nil
}

func (r *exampleRepository) Search(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	query, args, err := buildSearchExamplesQuery(r.builder, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "exampleRepository.Search").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryExamples(ctx, "exampleRepository.Search", query, args)
}

// queryExamples runs a multi-row SELECT over exampleColumns.
func (r *exampleRepository) queryExamples(ctx context.Context, funcName, query string, args []any) ([]models.Example, error) {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	err := r.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	examples := make([]models.Example, 0, 20)
	for rows.Next() {
		example, scanErr := scanExample(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan example row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		examples = append(examples, example)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return examples, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// timeScanner reads a timestamp column. SQLite hands back text when the
// declared column type is unknown to the driver, e.g. in RETURNING clauses.
type timeScanner struct {
	dest *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*s.dest = value
		return nil
	case nil:
		*s.dest = time.Time{}
		return nil
	case []byte:
		return s.parse(string(value))
	case string:
		return s.parse(value)
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s timeScanner) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*s.dest = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", value)
}

func scanExample(row rowScanner) (models.Example, error) {
	var example models.Example
	err := row.Scan(
		&example.ID,
		&example.Name,
		&example.Description,
		&example.IsActive,
		timeScanner{&example.CreatedAt},
		timeScanner{&example.UpdatedAt},
	)
	if err != nil {
		return models.Example{}, err
	}

	example.CreatedAt = example.CreatedAt.UTC()
	example.UpdatedAt = example.UpdatedAt.UTC()
	return example, nil
}
