package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(10)
	m.Set("a", "<svg a/>")

	svg, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "<svg a/>", svg)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMemoryCapacityEvictsLRU(t *testing.T) {
	m := NewMemory(3)
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	// Touch "a" so "b" becomes least recently used.
	_, ok := m.Get("a")
	require.True(t, ok)

	m.Set("d", "4")
	assert.Equal(t, 3, m.Len())
	assert.False(t, m.Contains("b"))
	assert.True(t, m.Contains("a"))
	assert.True(t, m.Contains("c"))
	assert.True(t, m.Contains("d"))
	assert.Equal(t, uint64(1), m.Evictions())
}

func TestMemoryOverfill(t *testing.T) {
	m := NewMemory(5)
	for i := 0; i < 6; i++ {
		m.Set(fmt.Sprintf("k%d", i), "v")
	}
	assert.Equal(t, 5, m.Len())
	assert.False(t, m.Contains("k0"))
}

func TestMemorySetRefreshesRecency(t *testing.T) {
	m := NewMemory(2)
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "1b") // re-set counts as fresh use
	m.Set("c", "3")

	assert.False(t, m.Contains("b"))
	svg, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1b", svg)
}

func TestMemoryPeekAndContainsSkipRecency(t *testing.T) {
	m := NewMemory(2)
	m.Set("a", "1")
	m.Set("b", "2")

	// Peek must not rescue "a" from eviction.
	_, ok := m.Peek("a")
	require.True(t, ok)
	require.True(t, m.Contains("a"))

	m.Set("c", "3")
	assert.False(t, m.Contains("a"))
}

func TestMemoryRemoveAndPurge(t *testing.T) {
	m := NewMemory(5)
	m.Set("a", "1")
	m.Set("b", "2")

	m.Remove("a")
	assert.False(t, m.Contains("a"))
	assert.Equal(t, 1, m.Len())

	m.Purge()
	assert.Zero(t, m.Len())
}

func TestMemoryDefaultSize(t *testing.T) {
	m := NewMemory(0)
	for i := 0; i <= DefaultMemorySize; i++ {
		m.Set(fmt.Sprintf("k%d", i), "v")
	}
	assert.Equal(t, DefaultMemorySize, m.Len())
}
