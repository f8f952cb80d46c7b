package cache

import (
	"strings"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
	"github.com/Stephen-Psaradellis/avatarforge/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTTL is how long a persisted avatar stays valid.
const DefaultTTL = 30 * 24 * time.Hour

// DefaultPrefix namespaces avatar records inside the shared KV store.
const DefaultPrefix = "avatar_cache_"

// Source tells a caller which tier satisfied a lookup.
type Source string

const (
	SourceMemory  Source = "memory"
	SourceStorage Source = "storage"
	SourceMiss    Source = "miss"
)

// Result is the outcome of a combined-tier lookup. SVG is empty when
// Source is SourceMiss.
type Result struct {
	SVG    string
	Source Source
}

// record is the persisted value format: the composed SVG, the insertion
// time in epoch milliseconds, and the view it was rendered for.
type record struct {
	Svg       string `json:"svg"`
	Timestamp int64  `json:"timestamp"`
	View      string `json:"view"`
}

// AvatarOptions configures an AvatarCache; zero values select defaults.
type AvatarOptions struct {
	MemorySize int
	TTL        time.Duration
	Prefix     string
}

// AvatarCache avoids recomposing previously seen (configuration, view)
// pairs across two tiers: a bounded in-process LRU and a durable KV store
// with TTL expiry. Storage faults are logged and degrade to misses; they
// never propagate to composition callers.
type AvatarCache struct {
	mem    *Memory
	kv     KV
	ttl    time.Duration
	prefix string

	hits        atomic.Uint64
	misses      atomic.Uint64
	storageHits atomic.Uint64
	promotions  atomic.Uint64
}

// NewAvatarCache builds a two-tier cache over the given persistent store.
func NewAvatarCache(kv KV, opts AvatarOptions) *AvatarCache {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &AvatarCache{
		mem:    NewMemory(opts.MemorySize),
		kv:     kv,
		ttl:    ttl,
		prefix: prefix,
	}
}

// Key returns the namespaced storage key for a (configuration, view) pair.
// The same key addresses both tiers.
func (c *AvatarCache) Key(cfg avatar.Configuration, view avatar.View) string {
	return c.prefix + avatar.CacheKey(cfg, view)
}

// Get checks the memory tier, then the persistent tier. A persistent hit
// is promoted into memory so subsequent reads stay fast. Expired records
// count as misses and are deleted best-effort.
func (c *AvatarCache) Get(cfg avatar.Configuration, view avatar.View) Result {
	key := c.Key(cfg, view)

	if svg, ok := c.mem.Get(key); ok {
		c.hits.Add(1)
		return Result{SVG: svg, Source: SourceMemory}
	}

	raw, found, err := c.kv.Get(key)
	if err != nil {
		logger.Warnf("avatar cache: storage read for %s failed: %v", key, err)
		c.misses.Add(1)
		return Result{Source: SourceMiss}
	}
	if !found {
		c.misses.Add(1)
		return Result{Source: SourceMiss}
	}

	var rec record
	if err := json.UnmarshalFromString(raw, &rec); err != nil {
		logger.Warnf("avatar cache: corrupt record under %s: %v", key, err)
		c.misses.Add(1)
		return Result{Source: SourceMiss}
	}
	if c.expired(rec.Timestamp) {
		if err := c.kv.Remove(key); err != nil {
			logger.Warnf("avatar cache: removing expired %s failed: %v", key, err)
		}
		c.misses.Add(1)
		return Result{Source: SourceMiss}
	}

	c.mem.Set(key, rec.Svg)
	c.storageHits.Add(1)
	c.promotions.Add(1)
	return Result{SVG: rec.Svg, Source: SourceStorage}
}

// Put writes the composed SVG to the memory tier synchronously, then to
// the persistent tier on a detached goroutine. A persistence failure is
// logged and otherwise dropped; the entry can always be regenerated.
func (c *AvatarCache) Put(cfg avatar.Configuration, view avatar.View, svg string) {
	key := c.Key(cfg, view)
	c.mem.Set(key, svg)

	rec := record{Svg: svg, Timestamp: time.Now().UnixMilli(), View: string(view)}
	raw, err := json.MarshalToString(rec)
	if err != nil {
		logger.Errorf("avatar cache: encoding record for %s failed: %v", key, err)
		return
	}
	go func() {
		if err := c.kv.Set(key, raw); err != nil {
			logger.Warnf("avatar cache: storage write for %s failed: %v", key, err)
		}
	}()
}

// Invalidate removes the entry for the given views from both tiers; with
// no views given it removes every view. Invalidating an absent entry is
// a no-op, so repeated calls are safe.
func (c *AvatarCache) Invalidate(cfg avatar.Configuration, views ...avatar.View) {
	if len(views) == 0 {
		views = avatar.Views
	}
	for _, view := range views {
		key := c.Key(cfg, view)
		c.mem.Remove(key)
		if err := c.kv.Remove(key); err != nil {
			logger.Warnf("avatar cache: storage delete for %s failed: %v", key, err)
		}
	}
}

// Clear empties the memory tier and bulk-deletes every persisted record
// under the cache's namespace prefix.
func (c *AvatarCache) Clear() {
	c.mem.Purge()
	keys, err := c.kv.Keys()
	if err != nil {
		logger.Warnf("avatar cache: listing keys for clear failed: %v", err)
		return
	}
	var mine []string
	for _, k := range keys {
		if strings.HasPrefix(k, c.prefix) {
			mine = append(mine, k)
		}
	}
	if len(mine) == 0 {
		return
	}
	if err := c.kv.RemoveMany(mine); err != nil {
		logger.Warnf("avatar cache: bulk delete for clear failed: %v", err)
	}
}

// PruneExpired scans every persisted record under the prefix and batch
// deletes those past the TTL or failing to parse, returning how many were
// removed. Corrupt records count as expired.
func (c *AvatarCache) PruneExpired() (int, error) {
	keys, err := c.kv.Keys()
	if err != nil {
		return 0, err
	}
	var stale []string
	for _, k := range keys {
		if !strings.HasPrefix(k, c.prefix) {
			continue
		}
		raw, found, err := c.kv.Get(k)
		if err != nil {
			logger.Warnf("avatar cache: prune read for %s failed: %v", k, err)
			continue
		}
		if !found {
			continue
		}
		var rec record
		if err := json.UnmarshalFromString(raw, &rec); err != nil {
			stale = append(stale, k)
			continue
		}
		if c.expired(rec.Timestamp) {
			stale = append(stale, k)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}
	if err := c.kv.RemoveMany(stale); err != nil {
		return 0, err
	}
	for _, k := range stale {
		c.mem.Remove(k)
	}
	return len(stale), nil
}

// InMemory reports whether the pair is resident in the memory tier,
// without touching recency or storage.
func (c *AvatarCache) InMemory(cfg avatar.Configuration, view avatar.View) bool {
	return c.mem.Contains(c.Key(cfg, view))
}

// GetMemory reads the memory tier only; safe for callers that must not
// block on I/O.
func (c *AvatarCache) GetMemory(cfg avatar.Configuration, view avatar.View) (string, bool) {
	return c.mem.Get(c.Key(cfg, view))
}

// SetMemory writes the memory tier only.
func (c *AvatarCache) SetMemory(cfg avatar.Configuration, view avatar.View, svg string) {
	c.mem.Set(c.Key(cfg, view), svg)
}

// Stats is a point-in-time snapshot of cache effectiveness counters.
type Stats struct {
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	StorageHits uint64 `json:"storageHits"`
	Promotions  uint64 `json:"promotions"`
	Evictions   uint64 `json:"evictions"`
	MemoryLen   int    `json:"memoryLen"`
}

// Stats returns the current counter snapshot.
func (c *AvatarCache) Stats() Stats {
	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		StorageHits: c.storageHits.Load(),
		Promotions:  c.promotions.Load(),
		Evictions:   c.mem.Evictions(),
		MemoryLen:   c.mem.Len(),
	}
}

func (c *AvatarCache) expired(tsMillis int64) bool {
	age := time.Since(time.UnixMilli(tsMillis))
	return age > c.ttl
}
