package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "gacha.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", KVTable).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, KVTable, name)
}

func TestOpenSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gacha.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO kv_store (key, value) VALUES (?, ?)", "p1:level", `{"total_xp":5}`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Migrations are idempotent and data survives
	db, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var value string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", "p1:level").Scan(&value))
	assert.Equal(t, `{"total_xp":5}`, value)
}
