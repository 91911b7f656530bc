package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/logger"
	"github.com/osse101/GachaTrip_Go/internal/metrics"
	"github.com/osse101/GachaTrip_Go/internal/storage"
)

// envelope wraps persisted state with a schema version
type envelope[T any] struct {
	Version string `json:"version"`
	Data    T      `json:"data"`
}

func storageKey(profileID, suffix string) string {
	return profileID + ":" + suffix
}

// keySuffix strips the profile id so metric labels stay low-cardinality
func keySuffix(key string) string {
	if i := strings.LastIndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// loadSnapshot reads key into a T. Absent, unparseable or foreign-version
// values yield the zero T and false; only backend failures are errors.
func loadSnapshot[T any](ctx context.Context, kv storage.KV, key string) (T, bool, error) {
	var zero T
	log := logger.FromContext(ctx)

	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("%w: %s %s: %w", domain.ErrStorageUnavailable, ErrMsgLoadFailed, key, err)
	}
	if !found {
		log.Debug(LogMsgSnapshotMissing, "key", key)
		return zero, false, nil
	}

	var env envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Warn(LogMsgSnapshotUnreadable, "key", key, "error", err)
		return zero, false, nil
	}
	if env.Version != SnapshotSchemaVersion {
		log.Warn(LogMsgSnapshotUnreadable, "key", key, "version", env.Version)
		return zero, false, nil
	}
	return env.Data, true, nil
}

// saveSnapshot writes data under key
func saveSnapshot[T any](ctx context.Context, kv storage.KV, key string, data T) error {
	raw, err := json.Marshal(envelope[T]{Version: SnapshotSchemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSaveFailed, key, err)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		metrics.StorageFailures.WithLabelValues(keySuffix(key)).Inc()
		logger.FromContext(ctx).Error(LogMsgSnapshotSaveFailed, "key", key, "error", err)
		return fmt.Errorf("%w: %s %s: %w", domain.ErrStorageUnavailable, ErrMsgSaveFailed, key, err)
	}
	return nil
}
