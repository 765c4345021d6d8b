// Package postgres opens the pgx connection pool used by the Postgres meme repository and
// makes sure its schema exists.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultMaxConns = 4

const schema = `
	CREATE TABLE IF NOT EXISTS memes (
		seq BIGSERIAL PRIMARY KEY,
		meme_id TEXT NOT NULL UNIQUE,
		image_id TEXT NOT NULL UNIQUE,
		caption TEXT
	)
`

// Connect creates a pool for dbURL, pings it and ensures the memes table exists.
func Connect(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse db pool config: %w", err)
	}
	poolCfg.MaxConns = defaultMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// EnsureSchema creates the memes table when it is missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure memes schema: %w", err)
	}
	return nil
}
