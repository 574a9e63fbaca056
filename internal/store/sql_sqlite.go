// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-service-template/internal/config"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/migrations"
)

const sqliteMemoryDSN = ":memory:"

// NewConnectSQLite opens a SQLite file, or an in-memory database for an
// empty DSN, with ? placeholders.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	if dsn == "" {
		dsn = sqliteMemoryDSN
	}

	// db will be in file
	if !isInMemorySQLite(dsn) && !strings.HasPrefix(dsn, "file:") {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := openDB(ctx, migrations.DialectSQLite, dsn, log, func(conn *sql.DB) {
		// every connection to :memory: is a separate database
		if isInMemorySQLite(dsn) {
			conn.SetMaxOpenConns(1)
		}
	})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

func isInMemorySQLite(dsn string) bool {
	return dsn == sqliteMemoryDSN || strings.Contains(dsn, "mode=memory")
}

// createLocalDBFileIfNotExists touches dbFile so the driver can open it.
func createLocalDBFileIfNotExists(dbFile string) error {
	f, err := os.OpenFile(dbFile, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
