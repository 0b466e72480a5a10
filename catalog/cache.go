package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/weekplan/option"
)

// ErrCacheMiss is returned by Cache.Get when no live entry exists.
var ErrCacheMiss = errors.New("catalog: cache miss")

// Cache stores candidate lists by Key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key Key) ([]option.Option, error)
	Set(ctx context.Context, key Key, opts []option.Option) error
	Delete(ctx context.Context, key Key) error
	Clear(ctx context.Context) error
}

type memoryEntry struct {
	opts    []option.Option
	expires time.Time // zero means never
}

// MemoryCache is a process-local Cache. The zero value is not usable; use
// NewMemoryCache.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryCache returns an empty cache. ttl <= 0 keeps entries forever.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

// Get returns a copy of the stored list or ErrCacheMiss.
func (c *MemoryCache) Get(_ context.Context, key Key) ([]option.Option, error) {
	c.mu.RLock()
	e, ok := c.entries[key.String()]
	c.mu.RUnlock()
	if !ok || (!e.expires.IsZero() && !c.now().Before(e.expires)) {
		return nil, ErrCacheMiss
	}

	return cloneOptions(e.opts), nil
}

// Set stores a copy of opts.
func (c *MemoryCache) Set(_ context.Context, key Key, opts []option.Option) error {
	e := memoryEntry{opts: cloneOptions(opts)}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[key.String()] = e
	c.mu.Unlock()

	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(_ context.Context, key Key) error {
	c.mu.Lock()
	delete(c.entries, key.String())
	c.mu.Unlock()

	return nil
}

// Clear drops every entry.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	clear(c.entries)
	c.mu.Unlock()

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// cloneOptions copies the slice and drops derived schedules, matching
// what a serializing cache returns.
func cloneOptions(opts []option.Option) []option.Option {
	out := make([]option.Option, len(opts))
	copy(out, opts)
	for i := range out {
		out[i].Schedule = nil
	}

	return out
}

// RedisCache stores candidate lists as JSON under Prefix + Key.String().
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// DefaultRedisPrefix namespaces weekplan keys.
const DefaultRedisPrefix = "weekplan:options:"

// NewRedisCache wraps client. An empty prefix uses DefaultRedisPrefix;
// ttl <= 0 stores entries without expiry.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	if ttl < 0 {
		ttl = 0
	}

	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// RedisKey returns the redis key used for key.
func (c *RedisCache) RedisKey(key Key) string { return c.prefix + key.String() }

// Get decodes the stored list or returns ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key Key) ([]option.Option, error) {
	data, err := c.client.Get(ctx, c.RedisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: redis get %s: %w", key, err)
	}

	var opts []option.Option
	if err = json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("catalog: decode cached %s: %w", key, err)
	}

	return opts, nil
}

// Set encodes opts and stores them with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key Key, opts []option.Option) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("catalog: encode %s: %w", key, err)
	}
	if err = c.client.Set(ctx, c.RedisKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog: redis set %s: %w", key, err)
	}

	return nil
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key Key) error {
	if err := c.client.Del(ctx, c.RedisKey(key)).Err(); err != nil {
		return fmt.Errorf("catalog: redis del %s: %w", key, err)
	}

	return nil
}

// Clear removes every key under the prefix, scanning in batches.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 256).Iterator()
	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 256 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("catalog: redis clear: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("catalog: redis scan: %w", err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("catalog: redis clear: %w", err)
		}
	}

	return nil
}
