package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/GachaTrip_Go/internal/database"
)

const (
	postgresGetQuery = `SELECT value FROM kv_store WHERE key = $1`
	postgresSetQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
)

// PostgresKV stores values in a PostgreSQL kv_store table
type PostgresKV struct {
	pool *pgxpool.Pool
}

// PoolOptions sizes the postgres connection pool. Zero values use the defaults.
type PoolOptions struct {
	MaxConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration
}

func (o PoolOptions) withDefaults() PoolOptions {
	if o.MaxConns <= 0 {
		o.MaxConns = DefaultMaxConns
	}
	if o.MaxConnIdle <= 0 {
		o.MaxConnIdle = DefaultMaxConnIdle
	}
	if o.MaxConnLife <= 0 {
		o.MaxConnLife = DefaultMaxConnLife
	}
	return o
}

// NewPostgresKV connects to dsn and applies the embedded migrations
func NewPostgresKV(ctx context.Context, dsn string, poolOpts PoolOptions) (*PostgresKV, error) {
	if dsn == "" {
		return nil, errors.New(ErrMsgDSNRequired)
	}
	poolOpts = poolOpts.withDefaults()
	pool, err := database.NewPool(ctx, dsn, poolOpts.MaxConns, poolOpts.MaxConnIdle, poolOpts.MaxConnLife)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	err = database.Migrate(ctx, db, goose.DialectPostgres)
	db.Close()
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresKV{pool: pool}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx, postgresGetQuery, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %s: %w", ErrMsgGetFailed, key, err)
	}
	return value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key, value string) error {
	if _, err := p.pool.Exec(ctx, postgresSetQuery, key, value); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSetFailed, key, err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	p.pool.Close()
	return nil
}
