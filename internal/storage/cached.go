package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache entry layout
// Increment this when cachedValue changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedValue wraps a stored value with version metadata for cache invalidation
type cachedValue struct {
	Version  string
	Value    string
	Found    bool
	CachedAt time.Time
}

// CachedKV is a read-through, write-through cache in front of another KV.
// Misses are cached too, so repeated reads of absent keys stay off the backend.
type CachedKV struct {
	next KV
	lru  *expirable.LRU[string, *cachedValue]
}

// NewCachedKV wraps next with an LRU of the given size and TTL
func NewCachedKV(next KV, size int, ttl time.Duration) *CachedKV {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedKV{
		next: next,
		lru:  expirable.NewLRU[string, *cachedValue](size, nil, ttl),
	}
}

func (c *CachedKV) Get(ctx context.Context, key string) (string, bool, error) {
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Value, entry.Found, nil
		}
		c.lru.Remove(key)
	}

	value, found, err := c.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	c.lru.Add(key, &cachedValue{Version: CacheSchemaVersion, Value: value, Found: found, CachedAt: time.Now()})
	return value, found, nil
}

// Set writes to the backend first; the cache is only updated when the write succeeds
func (c *CachedKV) Set(ctx context.Context, key, value string) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, &cachedValue{Version: CacheSchemaVersion, Value: value, Found: true, CachedAt: time.Now()})
	return nil
}

// Invalidate drops key from the cache
func (c *CachedKV) Invalidate(key string) {
	c.lru.Remove(key)
}

// Len returns the number of cached keys
func (c *CachedKV) Len() int {
	return c.lru.Len()
}

func (c *CachedKV) Close() error {
	c.lru.Purge()
	return c.next.Close()
}
