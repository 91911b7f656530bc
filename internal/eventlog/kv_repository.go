package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/logger"
	"github.com/osse101/GachaTrip_Go/internal/storage"
)

// StorageKey returns the history key of a profile
func StorageKey(profileID string) string {
	return profileID + ":" + KeySuffix
}

// KVRepository keeps a bounded, oldest-first list of events under one key
type KVRepository struct {
	mu         sync.Mutex
	kv         storage.KV
	key        string
	maxEntries int
}

// NewKVRepository creates a repository. maxEntries <= 0 uses DefaultMaxEntries.
func NewKVRepository(kv storage.KV, key string, maxEntries int) *KVRepository {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &KVRepository{kv: kv, key: key, maxEntries: maxEntries}
}

func (r *KVRepository) load(ctx context.Context) ([]Event, error) {
	raw, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgLoadHistory, err)
	}
	if !found {
		return nil, nil
	}

	var events []Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		logger.FromContext(ctx).Warn(LogMsgHistoryUnreadable, LogFieldKey, r.key, LogFieldError, err)
		return nil, nil
	}
	return events, nil
}

func (r *KVRepository) save(ctx context.Context, events []Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveHistory, err)
	}
	if err := r.kv.Set(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, ErrMsgSaveHistory, err)
	}
	return nil
}

// LogEvent appends evt, dropping the oldest events past maxEntries
func (r *KVRepository) LogEvent(ctx context.Context, evt Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx)
	if err != nil {
		return err
	}
	events = append(events, evt)
	if over := len(events) - r.maxEntries; over > 0 {
		events = events[over:]
	}
	return r.save(ctx, events)
}

func (r *KVRepository) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Event, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		evt := events[i]
		if filter.EventType != "" && evt.EventType != filter.EventType {
			continue
		}
		if !filter.Since.IsZero() && evt.CreatedAt.Before(filter.Since) {
			continue
		}
		out = append(out, evt)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *KVRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	kept := events[:0]
	for _, evt := range events {
		if !evt.CreatedAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	removed := int64(len(events) - len(kept))
	if removed == 0 {
		return 0, nil
	}
	return removed, r.save(ctx, kept)
}
