// Package postgres implements the stores on PostgreSQL through a pgx
// connection pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"estatehub/app/repositories"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// PingTimeout bounds the startup connectivity check.
const PingTimeout = 10 * time.Second

// DB wraps the pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// Open creates the pool and checks the server is reachable. Queries are
// traced through the logger when it is at debug level.
func Open(ctx context.Context, url string, maxConns int32, logger *zerolog.Logger) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	if logger.GetLevel() <= zerolog.DebugLevel {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(logger.With().Str("component", "pgx").Logger()),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("connected to the database")
	return &DB{Pool: pool, log: logger}, nil
}

// Stores returns the PostgreSQL-backed stores.
func (db *DB) Stores() repositories.Stores {
	return repositories.Stores{
		Posts:      &PostStore{pool: db.Pool},
		SavedPosts: &SavedPostStore{pool: db.Pool},
		Users:      &UserStore{pool: db.Pool},
		Health:     db,
	}
}

func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

func (db *DB) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
