package cache

import (
	"context"
	"sync"
	"time"

	"table-talk/internal/pkg/common"

	"go.uber.org/zap"
)

// cacheEntry 緩存條目
type cacheEntry struct {
	value     string
	expiresAt time.Time
	createdAt time.Time
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// MemoryStore 行程內的 TTL 快取；過期條目在下次查詢時懶惰清除
type MemoryStore struct {
	mu      sync.Mutex
	store   map[string]cacheEntry
	stats   cacheStats
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore 創建記憶體快取
func NewMemoryStore(maxSize int, ttl time.Duration) *MemoryStore {
	m := &MemoryStore{
		store:   make(map[string]cacheEntry),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}

	common.LogInfo("記憶體快取已初始化",
		zap.Int("最大容量", maxSize),
		zap.Duration("存活時間", ttl),
	)

	return m
}

// Get 取得快取值；過期條目直接刪除並回報未命中
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		return "", false
	}
	if m.now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogDebug("快取已過期", zap.String("鍵", key))
		return "", false
	}

	m.stats.hits++
	return entry.value, true
}

// Set 寫入快取；容量滿時先清過期條目，仍滿則淘汰最舊的一筆
func (m *MemoryStore) Set(ctx context.Context, key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if len(m.store) >= m.maxSize {
		m.cleanupLocked(now)
		if len(m.store) >= m.maxSize {
			m.evictOldestLocked()
		}
	}

	m.store[key] = cacheEntry{
		value:     value,
		expiresAt: now.Add(m.ttl),
		createdAt: now,
	}
}

// cleanupLocked 清掉全部已過期的條目；呼叫端需持有鎖
func (m *MemoryStore) cleanupLocked(now time.Time) {
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	if count > 0 {
		common.LogDebug("快取清理執行", zap.Int("清理數量", count))
	}
}

// evictOldestLocked 淘汰建立時間最早的條目；呼叫端需持有鎖
func (m *MemoryStore) evictOldestLocked() {
	var oldestKey string
	var oldestCreated time.Time
	for key, entry := range m.store {
		if oldestKey == "" || entry.createdAt.Before(oldestCreated) {
			oldestKey = key
			oldestCreated = entry.createdAt
		}
	}
	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogDebug("快取已淘汰", zap.String("鍵", oldestKey))
	}
}

// Stats 獲取快取統計信息
func (m *MemoryStore) Stats() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.maxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
	}
}

// Close 關閉快取並清空內容
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("記憶體快取已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
