package geocode

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache is a memoizing wrapper around a geocoding Client. Entries expire a
// fixed TTL after insertion (not sliding), and the least-recently-used
// entry is evicted when the cache is full. Failed lookups are cached as
// unmatched results for the same TTL so a bad postal code does not hammer
// the upstream API on every pass.
type Cache struct {
	inner Client

	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List // front=oldest, back=most recently used
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock
	group      singleflight.Group
	hits       atomic.Int64
	misses     atomic.Int64
}

type cacheEntry struct {
	key        string
	result     Result
	insertedAt time.Time
}

// CacheStats contains cache performance counters.
type CacheStats struct {
	Entries    int     `json:"entries"`
	MaxEntries int     `json:"max_entries"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock sets the clock used for TTL checks. Tests use a fake clock.
func WithClock(clock clockwork.Clock) CacheOption {
	return func(c *Cache) {
		c.clock = clock
	}
}

// NewCache wraps inner with a memoizing cache of at most maxEntries
// results, each valid for ttl after insertion.
func NewCache(inner Client, maxEntries int, ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		inner:      inner,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the cached result for postalCode, or performs one
// upstream lookup. Concurrent calls for the same key share a single
// upstream request. An upstream failure is logged, cached as unmatched,
// and reported to the caller as an unmatched result rather than an error.
func (c *Cache) Resolve(ctx context.Context, postalCode string) (*Result, error) {
	if r, ok := c.lookup(postalCode, true); ok {
		return r, nil
	}

	v, err, _ := c.group.Do(postalCode, func() (any, error) {
		// Another flight may have filled the entry while we waited.
		if r, ok := c.lookup(postalCode, false); ok {
			return r, nil
		}

		res, lookupErr := c.inner.Resolve(ctx, postalCode)
		if lookupErr != nil {
			zap.L().Warn("geocode lookup failed, caching negative result",
				zap.String("postal_code", postalCode),
				zap.Error(lookupErr),
			)
			res = &Result{Matched: false}
		}
		c.store(postalCode, *res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// Stats returns cache performance counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	entries := len(c.entries)
	maxEntries := c.maxEntries
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Entries:    entries,
		MaxEntries: maxEntries,
		Hits:       hits,
		Misses:     misses,
		HitRate:    hitRate,
	}
}

// lookup returns the live cached result for key, expiring stale entries.
func (c *Cache) lookup(key string, count bool) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		if count {
			c.misses.Add(1)
		}
		return nil, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.clock.Since(entry.insertedAt) > c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		if count {
			c.misses.Add(1)
		}
		return nil, false
	}

	c.order.MoveToBack(elem)
	if count {
		c.hits.Add(1)
	}
	result := entry.result
	return &result, true
}

// store inserts a result, evicting the least-recently-used entry at capacity.
func (c *Cache) store(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value = &cacheEntry{key: key, result: result, insertedAt: c.clock.Now()}
		c.order.MoveToBack(elem)
		return
	}

	for len(c.entries) >= c.maxEntries && c.order.Len() > 0 {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}

	elem := c.order.PushBack(&cacheEntry{key: key, result: result, insertedAt: c.clock.Now()})
	c.entries[key] = elem
}
