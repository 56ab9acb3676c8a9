package feeds

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

const (
	// DefaultCacheTTL is how long a parsed feed stays fresh.
	DefaultCacheTTL = 24 * time.Hour
	// DefaultCacheMaxEntries caps how many feeds are kept, newest first.
	DefaultCacheMaxEntries = 100
)

type cacheEntry struct {
	podcast   *Podcast
	timestamp time.Time
}

// Cache holds parsed feeds keyed by feed URL with time and size bounds.
// Expired entries are purged lazily on the read path. An optional CacheStore
// mirrors entries to persistent storage so they survive restarts; store
// failures never invalidate the in-memory copy.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	store      CacheStore
	now        func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL overrides the freshness window.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries overrides the entry cap.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithStore attaches a persistent mirror for cache entries.
func WithStore(store CacheStore) CacheOption {
	return func(c *Cache) {
		c.store = store
	}
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries:    make(map[string]cacheEntry),
		ttl:        DefaultCacheTTL,
		maxEntries: DefaultCacheMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Warm loads persisted entries into memory. Call once at startup; entries
// already expired are skipped and removed from the store.
func (c *Cache) Warm(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	entries, err := c.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var expired []string
	now := c.now()
	for _, stored := range entries {
		if now.Sub(stored.Timestamp) >= c.ttl {
			expired = append(expired, stored.URL)
			continue
		}
		c.entries[stored.URL] = cacheEntry{podcast: stored.Podcast, timestamp: stored.Timestamp}
	}
	if len(expired) > 0 {
		if err := c.store.Delete(ctx, expired); err != nil {
			log.Printf("[WARN] Feed cache: failed to drop %d expired persisted entries: %v", len(expired), err)
		}
	}
	log.Printf("[INFO] Feed cache warmed with %d entries", len(c.entries))
	return nil
}

// Get returns the cached podcast for url if it is still fresh. Reading also
// purges every expired entry, so a long-idle cache converges without a
// background sweeper.
func (c *Cache) Get(ctx context.Context, url string) (*Podcast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeExpiredLocked(ctx)

	e, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	return e.podcast, true
}

// GetStale returns the cached podcast regardless of age. Last-resort
// fallback when a refresh fails.
func (c *Cache) GetStale(url string) (*Podcast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[url]
	if !ok {
		return nil, false
	}
	return e.podcast, true
}

// Put stores a parsed feed under url, evicting the oldest entries beyond the
// cap. The in-memory write always succeeds; a failed persistent mirror write
// is retried once after trimming the store, and surfaces as *CacheError if
// still failing.
func (c *Cache) Put(ctx context.Context, url string, podcast *Podcast) error {
	c.mu.Lock()

	now := c.now()
	c.entries[url] = cacheEntry{podcast: podcast, timestamp: now}

	var evicted []string
	if len(c.entries) > c.maxEntries {
		evicted = c.evictOldestLocked(c.maxEntries)
	}
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if len(evicted) > 0 {
		if err := c.store.Delete(ctx, evicted); err != nil {
			log.Printf("[WARN] Feed cache: failed to drop %d evicted persisted entries: %v", len(evicted), err)
		}
	}
	if err := c.store.Save(ctx, url, podcast, now); err != nil {
		// Storage pressure recovery: keep only the newest entries and retry.
		if trimErr := c.store.Trim(ctx, c.maxEntries); trimErr != nil {
			log.Printf("[WARN] Feed cache: trim after failed save also failed: %v", trimErr)
		}
		if err = c.store.Save(ctx, url, podcast, now); err != nil {
			return &CacheError{URL: url, Cause: err}
		}
	}
	return nil
}

// Invalidate drops url from memory and the store.
func (c *Cache) Invalidate(ctx context.Context, url string) {
	c.mu.Lock()
	_, ok := c.entries[url]
	delete(c.entries, url)
	c.mu.Unlock()

	if ok && c.store != nil {
		if err := c.store.Delete(ctx, []string{url}); err != nil {
			log.Printf("[WARN] Feed cache: failed to drop persisted entry %s: %v", url, err)
		}
	}
}

// Len reports the number of entries currently held, fresh or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// purgeExpiredLocked removes every entry older than the TTL. Caller holds mu.
func (c *Cache) purgeExpiredLocked(ctx context.Context) {
	now := c.now()
	var expired []string
	for url, e := range c.entries {
		if now.Sub(e.timestamp) >= c.ttl {
			expired = append(expired, url)
		}
	}
	for _, url := range expired {
		delete(c.entries, url)
	}
	if len(expired) > 0 && c.store != nil {
		if err := c.store.Delete(ctx, expired); err != nil {
			log.Printf("[WARN] Feed cache: failed to drop %d expired persisted entries: %v", len(expired), err)
		}
	}
}

// evictOldestLocked trims the map down to keep entries, oldest out first,
// and returns the evicted URLs. Caller holds mu.
func (c *Cache) evictOldestLocked(keep int) []string {
	type aged struct {
		url string
		ts  time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for url, e := range c.entries {
		all = append(all, aged{url: url, ts: e.timestamp})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ts.After(all[j].ts) })

	var evicted []string
	for _, a := range all[keep:] {
		delete(c.entries, a.url)
		evicted = append(evicted, a.url)
	}
	return evicted
}
