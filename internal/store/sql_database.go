// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"
	sqliteScheme     = "sqlite://"
)

// DB is a database handle bound to one dialect. Repositories build their
// queries with [DB.builder] so that placeholders match the driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by the DSN scheme:
// postgres:// and postgresql:// use pgx, sqlite:// uses go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, postgresScheme), strings.HasPrefix(cfg.DSN, postgresqlScheme):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		return NewConnectSQLite(ctx, strings.TrimPrefix(cfg.DSN, sqliteScheme), log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Dialect returns the goose dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// classify converts a driver error into a store error. Unique violations
// become [errUniqueViolation] so that each repository can pick its own
// sentinel; retryable errors wrap [ErrTemporarilyUnavailable].
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if db.errorClassificator.IsUniqueViolation(err) {
		return errUniqueViolation
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

var errUniqueViolation = errors.New("unique violation")
