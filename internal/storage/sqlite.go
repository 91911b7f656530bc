package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/GachaTrip_Go/internal/database"
)

const (
	sqliteGetQuery = `SELECT value FROM kv_store WHERE key = ?`
	sqliteSetQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
)

// SQLiteKV stores values in a SQLite kv_store table
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV opens (and migrates) the database file at path
func NewSQLiteKV(ctx context.Context, path string) (*SQLiteKV, error) {
	if path == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, sqliteGetQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %s: %w", ErrMsgGetFailed, key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, sqliteSetQuery, key, value); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSetFailed, key, err)
	}
	return nil
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
