package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(10, time.Hour)
	ctx := context.Background()

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	store.Set(ctx, "k", "v")
	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestMemoryStoreTTLBoundary(t *testing.T) {
	current := time.Now()
	store := NewMemoryStore(10, time.Hour)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	store.Set(ctx, "k", "v")

	// TTL 內仍可取得
	current = current.Add(time.Hour - time.Second)
	_, ok := store.Get(ctx, "k")
	assert.True(t, ok)

	// 過期後取不到，且條目被懶惰刪除
	current = current.Add(2 * time.Second)
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)
	assert.Empty(t, store.store)
}

func TestMemoryStoreEvictsOldestWhenFull(t *testing.T) {
	current := time.Now()
	store := NewMemoryStore(2, time.Hour)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	store.Set(ctx, "first", "1")
	current = current.Add(time.Second)
	store.Set(ctx, "second", "2")
	current = current.Add(time.Second)
	store.Set(ctx, "third", "3")

	// 容量滿且無過期條目時，淘汰建立時間最早的一筆
	_, ok := store.Get(ctx, "first")
	assert.False(t, ok)
	_, ok = store.Get(ctx, "second")
	assert.True(t, ok)
	_, ok = store.Get(ctx, "third")
	assert.True(t, ok)
}

func TestMemoryStoreStats(t *testing.T) {
	store := NewMemoryStore(10, time.Hour)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	store.Get(ctx, "k")
	store.Get(ctx, "nope")

	stats := store.Stats()
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}

func TestKeyCanonicalization(t *testing.T) {
	base := Key("Friends", 4, "no peanuts")

	// 大小寫與空白寫法不同但語義相同的請求命中同一個鍵
	assert.Equal(t, base, Key("friends", 4, "No   Peanuts"))
	assert.Equal(t, base, Key("  Friends ", 4, " no peanuts "))

	// 語義不同的欄位產生不同的鍵
	assert.NotEqual(t, base, Key("Friends", 5, "no peanuts"))
	assert.NotEqual(t, base, Key("Family", 4, "no peanuts"))
	assert.NotEqual(t, base, Key("Friends", 4, "no shellfish"))
}
