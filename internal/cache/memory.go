package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemorySize bounds the in-process tier.
const DefaultMemorySize = 100

// Memory is the bounded in-process LRU tier holding composed SVG strings.
// A Get refreshes recency; a Set at capacity evicts the least recently
// used entry. All operations are synchronous with no I/O, so render-time
// fast paths may call them freely.
type Memory struct {
	lru       *lru.Cache[string, string]
	evictions atomic.Uint64
}

// NewMemory returns a Memory holding at most size entries; size <= 0
// falls back to DefaultMemorySize.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &Memory{lru: c}
}

// Get returns the cached SVG and refreshes the entry's recency.
func (m *Memory) Get(key string) (string, bool) {
	return m.lru.Get(key)
}

// Peek returns the cached SVG without touching recency.
func (m *Memory) Peek(key string) (string, bool) {
	return m.lru.Peek(key)
}

// Contains reports presence without touching recency.
func (m *Memory) Contains(key string) bool {
	return m.lru.Contains(key)
}

// Set inserts the SVG under key. An existing entry is removed first so
// re-insertion counts as fresh use; if the cache is full the least
// recently used entry is evicted before the insert.
func (m *Memory) Set(key, svg string) {
	m.lru.Remove(key)
	if evicted := m.lru.Add(key, svg); evicted {
		m.evictions.Add(1)
	}
}

// Remove deletes the entry if present.
func (m *Memory) Remove(key string) {
	m.lru.Remove(key)
}

// Len returns the current entry count.
func (m *Memory) Len() int {
	return m.lru.Len()
}

// Purge empties the tier.
func (m *Memory) Purge() {
	m.lru.Purge()
}

// Evictions returns how many entries capacity pressure has pushed out.
func (m *Memory) Evictions() uint64 {
	return m.evictions.Load()
}
