package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-finance-keeper/internal/config"
	"github.com/MKhiriev/go-finance-keeper/internal/logger"
	"github.com/MKhiriev/go-finance-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

func sqliteDialect() dialect {
	return dialect{
		name:        config.DriverSQLite,
		placeholder: sq.Question,
		classifier:  NewSQLiteErrorClassifier(),
		migrations:  migrations.SQLite,
	}
}

// NewConnectSQLite opens a SQLite database with mattn/go-sqlite3. The DSN is
// passed to the driver as is, so both file paths and ":memory:" work.
//
// SQLite allows a single writer; the pool is limited to one connection, which
// also keeps an in-memory database alive for the life of the pool.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, timeoutOrDefault(cfg.QueryTimeout))
	defer cancel()
	if err = conn.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = conn.ExecContext(pingCtx, "PRAGMA foreign_keys = ON"); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error enabling foreign keys")
		_ = conn.Close()
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, sqliteDialect(), cfg.QueryTimeout, log), nil
}
