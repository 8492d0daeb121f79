package cache

import (
	"context"
	"time"

	"table-talk/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore go-redis 實作的快取；任何 Redis 錯誤都降級為未命中
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 創建 Redis 快取並測試連線
func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("addr", addr),
		zap.Duration("存活時間", ttl),
	)

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get 取得快取值
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("Redis get failed, treating as miss", zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set 寫入快取；失敗時僅記錄警告
func (s *RedisStore) Set(ctx context.Context, key string, value string) {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		common.LogWarn("Redis set failed", zap.Error(err))
	}
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
