// Package storage provides the key-value persistence port and its adapters.
package storage

import "context"

// KV is a string key-value store. Values are opaque serialized snapshots.
type KV interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	Close() error
}
