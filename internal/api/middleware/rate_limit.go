package middleware

import (
	"fmt"
	"strings"

	"table-talk/internal/core/ratelimit"
	"table-talk/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientIdentifier 推導限流用的呼叫者識別碼：
// X-Forwarded-For 第一段 → X-Real-IP → "unknown"。
// 故意不回傳空字串，匿名流量共用同一個桶而不是直接放行。
func ClientIdentifier(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0]); first != "" {
			return first
		}
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}

// RateLimit 固定視窗限流中間件，以呼叫者識別碼分桶
func RateLimit(limiter *ratelimit.Limiter, window int) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := ClientIdentifier(c)
		if !limiter.Allow(identifier) {
			common.LogInfo("Rate limit exceeded",
				zap.String("identifier", identifier),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", window))
			common.AbortWithErrorHint(c, common.ErrTooManyRequests, limiter.Hint())
			return
		}

		c.Next()
	}
}

// MinInterval 最小間隔限流中間件，保護高成本的生成端點
func MinInterval(limiter *ratelimit.IntervalLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := ClientIdentifier(c)
		if !limiter.Allow(identifier) {
			common.LogInfo("Generation interval exceeded",
				zap.String("identifier", identifier),
				zap.String("path", c.Request.URL.Path),
			)

			common.AbortWithErrorHint(c, common.ErrTooManyRequests, limiter.Hint())
			return
		}

		c.Next()
	}
}
