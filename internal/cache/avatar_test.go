package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
)

// mapKV is an in-memory KV double with the same contract as Store.
type mapKV struct {
	mu sync.Mutex
	m  map[string]string
}

func newMapKV() *mapKV { return &mapKV{m: make(map[string]string)} }

func (k *mapKV) Get(key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *mapKV) Set(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = value
	return nil
}

func (k *mapKV) Remove(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.m, key)
	return nil
}

func (k *mapKV) Keys() ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	keys := make([]string, 0, len(k.m))
	for key := range k.m {
		keys = append(keys, key)
	}
	return keys, nil
}

func (k *mapKV) RemoveMany(keys []string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	for _, key := range keys {
		delete(k.m, key)
	}
	return nil
}

func (k *mapKV) has(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.m[key]
	return ok
}

// brokenKV fails every operation, standing in for a dead storage layer.
type brokenKV struct{}

var errBroken = errors.New("storage down")

func (brokenKV) Get(string) (string, bool, error) { return "", false, errBroken }
func (brokenKV) Set(string, string) error         { return errBroken }
func (brokenKV) Remove(string) error              { return errBroken }
func (brokenKV) Keys() ([]string, error)          { return nil, errBroken }
func (brokenKV) RemoveMany([]string) error        { return errBroken }

func testConfig() avatar.Configuration {
	return avatar.Configuration{SkinTone: "Light", HairColor: "Brown", EyeColor: "Blue"}
}

func waitPersisted(t *testing.T, kv *mapKV, key string) {
	t.Helper()
	require.Eventually(t, func() bool { return kv.has(key) },
		2*time.Second, 5*time.Millisecond, "persistent write for %s never landed", key)
}

func TestGetMissThenPutThenMemoryHit(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	res := c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMiss, res.Source)
	assert.Empty(t, res.SVG)

	c.Put(cfg, avatar.ViewPortrait, "<svg/>")

	res = c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMemory, res.Source)
	assert.Equal(t, "<svg/>", res.SVG)
}

func TestPutPersistsAsynchronously(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Put(cfg, avatar.ViewPortrait, "<svg/>")
	key := c.Key(cfg, avatar.ViewPortrait)
	waitPersisted(t, kv, key)

	raw, found, err := kv.Get(key)
	require.NoError(t, err)
	require.True(t, found)
	var rec record
	require.NoError(t, json.UnmarshalFromString(raw, &rec))
	assert.Equal(t, "<svg/>", rec.Svg)
	assert.Equal(t, "portrait", rec.View)
	assert.Positive(t, rec.Timestamp)
}

func TestStorageHitPromotesToMemory(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Put(cfg, avatar.ViewPortrait, "<svg/>")
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))

	// Drop the memory tier so only storage can answer.
	c.mem.Purge()
	require.False(t, c.InMemory(cfg, avatar.ViewPortrait))

	res := c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceStorage, res.Source)
	assert.Equal(t, "<svg/>", res.SVG)

	// Promotion: now resident in memory, next read stays off storage.
	assert.True(t, c.InMemory(cfg, avatar.ViewPortrait))
	res = c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMemory, res.Source)
}

func TestExpiredRecordIsMissAndDeleted(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{TTL: 24 * time.Hour})
	cfg := testConfig()
	key := c.Key(cfg, avatar.ViewPortrait)

	old := time.Now().Add(-48 * time.Hour).UnixMilli()
	raw, err := json.MarshalToString(record{Svg: "<svg/>", Timestamp: old, View: "portrait"})
	require.NoError(t, err)
	require.NoError(t, kv.Set(key, raw))

	res := c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMiss, res.Source)
	assert.False(t, kv.has(key), "expired record should be proactively deleted")
}

func TestFreshRecordWithinTTLIsServed(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{TTL: 24 * time.Hour})
	cfg := testConfig()
	key := c.Key(cfg, avatar.ViewPortrait)

	recent := time.Now().Add(-1 * time.Hour).UnixMilli()
	raw, err := json.MarshalToString(record{Svg: "<svg/>", Timestamp: recent, View: "portrait"})
	require.NoError(t, err)
	require.NoError(t, kv.Set(key, raw))

	res := c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceStorage, res.Source)
}

func TestCorruptRecordIsMiss(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()
	require.NoError(t, kv.Set(c.Key(cfg, avatar.ViewPortrait), "{not json"))

	res := c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMiss, res.Source)
}

func TestCrossViewIndependence(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Put(cfg, avatar.ViewPortrait, "<svg portrait/>")

	res := c.Get(cfg, avatar.ViewFullBody)
	assert.Equal(t, SourceMiss, res.Source)

	res = c.Get(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMemory, res.Source)
	assert.Equal(t, "<svg portrait/>", res.SVG)
}

func TestInvalidateBothTiersAndIdempotent(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Put(cfg, avatar.ViewPortrait, "<svg/>")
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))

	c.Invalidate(cfg, avatar.ViewPortrait)
	assert.False(t, c.InMemory(cfg, avatar.ViewPortrait))
	assert.False(t, kv.has(c.Key(cfg, avatar.ViewPortrait)))

	// second invalidation is a no-op, not an error
	c.Invalidate(cfg, avatar.ViewPortrait)
	assert.Equal(t, SourceMiss, c.Get(cfg, avatar.ViewPortrait).Source)
}

func TestInvalidateWithoutViewCoversAllViews(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Put(cfg, avatar.ViewPortrait, "<svg p/>")
	c.Put(cfg, avatar.ViewFullBody, "<svg f/>")
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewFullBody))

	c.Invalidate(cfg)
	assert.Equal(t, SourceMiss, c.Get(cfg, avatar.ViewPortrait).Source)
	assert.Equal(t, SourceMiss, c.Get(cfg, avatar.ViewFullBody).Source)
}

func TestClearRemovesOnlyNamespacedKeys(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Put(cfg, avatar.ViewPortrait, "<svg/>")
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))
	require.NoError(t, kv.Set("unrelated_key", "keep me"))

	c.Clear()
	assert.False(t, kv.has(c.Key(cfg, avatar.ViewPortrait)))
	assert.True(t, kv.has("unrelated_key"))
	assert.Zero(t, c.Stats().MemoryLen)
}

func TestPruneExpired(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{TTL: 24 * time.Hour})
	cfg := testConfig()
	other := avatar.Configuration{SkinTone: "Deep", HairColor: "Black"}

	// fresh entry stays
	c.Put(cfg, avatar.ViewPortrait, "<svg fresh/>")
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))

	// expired entry goes
	old := time.Now().Add(-72 * time.Hour).UnixMilli()
	raw, err := json.MarshalToString(record{Svg: "<svg old/>", Timestamp: old, View: "portrait"})
	require.NoError(t, err)
	require.NoError(t, kv.Set(c.Key(other, avatar.ViewPortrait), raw))

	// corrupt entry counts as expired
	require.NoError(t, kv.Set(DefaultPrefix+"portrait_corrupt", "###"))

	// foreign key is ignored
	require.NoError(t, kv.Set("unrelated_key", "keep me"))

	removed, err := c.PruneExpired()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.True(t, kv.has(c.Key(cfg, avatar.ViewPortrait)))
	assert.False(t, kv.has(c.Key(other, avatar.ViewPortrait)))
	assert.False(t, kv.has(DefaultPrefix+"portrait_corrupt"))
	assert.True(t, kv.has("unrelated_key"))
}

func TestPruneNothingToDo(t *testing.T) {
	c := NewAvatarCache(newMapKV(), AvatarOptions{})
	removed, err := c.PruneExpired()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStorageFaultsNeverPropagate(t *testing.T) {
	c := NewAvatarCache(brokenKV{}, AvatarOptions{})
	cfg := testConfig()

	assert.Equal(t, SourceMiss, c.Get(cfg, avatar.ViewPortrait).Source)

	// Put still lands in memory even though persistence fails.
	c.Put(cfg, avatar.ViewPortrait, "<svg/>")
	assert.Equal(t, SourceMemory, c.Get(cfg, avatar.ViewPortrait).Source)

	assert.NotPanics(t, func() {
		c.Invalidate(cfg)
		c.Clear()
	})
	_, err := c.PruneExpired()
	assert.Error(t, err)
}

func TestMemoryOnlyHelpers(t *testing.T) {
	c := NewAvatarCache(newMapKV(), AvatarOptions{})
	cfg := testConfig()

	assert.False(t, c.InMemory(cfg, avatar.ViewPortrait))

	c.SetMemory(cfg, avatar.ViewPortrait, "<svg/>")
	assert.True(t, c.InMemory(cfg, avatar.ViewPortrait))

	svg, ok := c.GetMemory(cfg, avatar.ViewPortrait)
	require.True(t, ok)
	assert.Equal(t, "<svg/>", svg)

	_, ok = c.GetMemory(cfg, avatar.ViewFullBody)
	assert.False(t, ok)
}

func TestStatsCounters(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{})
	cfg := testConfig()

	c.Get(cfg, avatar.ViewPortrait) // miss
	c.Put(cfg, avatar.ViewPortrait, "<svg/>")
	c.Get(cfg, avatar.ViewPortrait) // memory hit
	waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))
	c.mem.Purge()
	c.Get(cfg, avatar.ViewPortrait) // storage hit + promotion

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.StorageHits)
	assert.Equal(t, uint64(1), s.Promotions)
	assert.Equal(t, 1, s.MemoryLen)
}

func TestSmallMemoryTierEvictsButStorageStillServes(t *testing.T) {
	kv := newMapKV()
	c := NewAvatarCache(kv, AvatarOptions{MemorySize: 2})

	cfgs := []avatar.Configuration{
		{SkinTone: "Light"},
		{SkinTone: "Medium"},
		{SkinTone: "Deep"},
	}
	for _, cfg := range cfgs {
		c.Put(cfg, avatar.ViewPortrait, "<svg "+cfg.SkinTone+"/>")
		waitPersisted(t, kv, c.Key(cfg, avatar.ViewPortrait))
	}

	// First config was evicted from memory but storage promotes it back.
	require.False(t, c.InMemory(cfgs[0], avatar.ViewPortrait))
	res := c.Get(cfgs[0], avatar.ViewPortrait)
	assert.Equal(t, SourceStorage, res.Source)
	assert.Equal(t, "<svg Light/>", res.SVG)
	assert.True(t, c.InMemory(cfgs[0], avatar.ViewPortrait))
	assert.Positive(t, c.Stats().Evictions)
}
