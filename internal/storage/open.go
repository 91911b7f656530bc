package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/logger"
)

// Options selects and configures a KV backend
type Options struct {
	Backend   string
	Path      string // file and sqlite
	DSN       string // postgres
	Pool      PoolOptions // postgres
	CacheSize int         // 0 disables the cache
	CacheTTL  time.Duration
}

// Open creates the KV named by opts.Backend, optionally wrapped in a CachedKV
func Open(ctx context.Context, opts Options) (KV, error) {
	var (
		kv  KV
		err error
	)

	switch opts.Backend {
	case BackendMemory, "":
		kv = NewMemoryKV()
	case BackendFile:
		kv, err = NewFileKV(ctx, opts.Path)
	case BackendSQLite:
		kv, err = NewSQLiteKV(ctx, opts.Path)
	case BackendPostgres:
		kv, err = NewPostgresKV(ctx, opts.DSN, opts.Pool)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, opts.Backend, err)
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgStorageOpened, "backend", opts.Backend)

	if opts.CacheSize > 0 {
		log.Debug(LogMsgStorageCached, "size", opts.CacheSize, "ttl", opts.CacheTTL)
		return NewCachedKV(kv, opts.CacheSize, opts.CacheTTL), nil
	}
	return kv, nil
}
