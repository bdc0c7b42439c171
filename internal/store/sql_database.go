// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

const defaultQueryTimeout = 5 * time.Second

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	// Classify reports whether err is transient.
	Classify(err error) ErrorClassification
	// UniqueViolation reports whether err is a uniqueness violation and, if
	// so, the constraint or column list the driver named.
	UniqueViolation(err error) (target string, ok bool)
}

// dialect bundles everything that differs between the supported databases.
type dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	classifier  ErrorClassificator
	migrations  migrations.Dialect
}

// DB is the database handle shared by all repositories.
type DB struct {
	*sql.DB
	dialect      dialect
	queries      sqlQueries
	queryTimeout time.Duration
	logger       *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, d dialect, queryTimeout time.Duration, log *logger.Logger) *DB {
	return &DB{
		DB:           conn,
		dialect:      d,
		queries:      newSQLQueries(d.placeholder),
		queryTimeout: timeoutOrDefault(queryTimeout),
		logger:       log,
	}
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultQueryTimeout
	}
	return d
}

// Migrate applies all pending schema migrations of the dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.migrations)
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database connection")
	return db.DB.Close()
}

// withTimeout bounds a single store call by the configured query timeout.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

// classify attaches ErrStoreTimeout or ErrStoreUnavailable to infrastructure
// failures. Other errors are returned unchanged.
func (db *DB) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrStoreTimeout, err)
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		db.dialect.classifier.Classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return err
	}
}

// uniqueViolation maps a uniqueness violation to the matching domain
// sentinel. It returns nil for any other error.
func (db *DB) uniqueViolation(err error) error {
	target, ok := db.dialect.classifier.UniqueViolation(err)
	if !ok {
		return nil
	}

	switch {
	case strings.Contains(target, "email"):
		return ErrEmailAlreadyExists
	case strings.Contains(target, "username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(target, "categories"):
		return ErrCategoryAlreadyExists
	default:
		return nil
	}
}
