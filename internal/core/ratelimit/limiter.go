package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// bucket 單一識別碼的固定視窗計數
type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter 以識別碼為單位的固定視窗限流器。
// 視窗到期的桶在下次造訪時順手清掉，不使用背景計時器。
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewLimiter 創建固定視窗限流器
func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow 檢查識別碼是否允許請求。
// 空識別碼一律放行（fail open），避免代理設定錯誤時擋掉全部流量。
func (l *Limiter) Allow(identifier string) bool {
	if identifier == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)

	b, ok := l.buckets[identifier]
	if !ok || !b.resetAt.After(now) {
		// 視窗到期時整個桶換新，不是累加
		l.buckets[identifier] = &bucket{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// sweepLocked 順手清掉已過期的桶；呼叫端需持有鎖
func (l *Limiter) sweepLocked(now time.Time) {
	for key, b := range l.buckets {
		if !b.resetAt.After(now) {
			delete(l.buckets, key)
		}
	}
}

// Hint 回傳給使用者看的限流說明
func (l *Limiter) Hint() string {
	return fmt.Sprintf("Limited to %d requests every %d minutes per IP.", l.limit, int(l.window.Minutes()))
}

// IntervalLimiter 針對高成本端點的最小間隔限流器：
// 同一識別碼的連續請求之間需隔開固定時間，不做突發計數
type IntervalLimiter struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	interval time.Duration
	now      func() time.Time
}

// NewIntervalLimiter 創建最小間隔限流器
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		lastSeen: make(map[string]time.Time),
		interval: interval,
		now:      time.Now,
	}
}

// Allow 距上次請求不足最小間隔時拒絕；空識別碼一律放行
func (l *IntervalLimiter) Allow(identifier string) bool {
	if identifier == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	// 順手清掉早已過期的紀錄
	for key, seen := range l.lastSeen {
		if now.Sub(seen) > l.interval {
			delete(l.lastSeen, key)
		}
	}

	if seen, ok := l.lastSeen[identifier]; ok && now.Sub(seen) < l.interval {
		return false
	}
	l.lastSeen[identifier] = now
	return true
}

// Hint 回傳給使用者看的間隔說明
func (l *IntervalLimiter) Hint() string {
	return fmt.Sprintf("Wait at least %s between generation requests.", l.interval)
}
