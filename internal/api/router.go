package api

import (
	"context"
	"math/rand"
	"time"

	"table-talk/internal/api/handlers/health"
	recipeHandler "table-talk/internal/api/handlers/recipe"
	substituteHandler "table-talk/internal/api/handlers/substitute"
	topicsHandler "table-talk/internal/api/handlers/topics"
	"table-talk/internal/api/middleware"
	"table-talk/internal/core/ai/cache"
	"table-talk/internal/core/ai/openai"
	"table-talk/internal/core/ratelimit"
	recipeCore "table-talk/internal/core/recipe"
	substituteCore "table-talk/internal/core/substitute"
	topicsCore "table-talk/internal/core/topics"
	"table-talk/internal/infrastructure/config"
	"table-talk/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (1MB)，本服務的請求都是小 JSON
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-Topics-Source"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 初始化服務
	generator := openai.NewClient(cfg)
	provider := recipeCore.SelectProvider(cfg)
	searcher := recipeCore.NewSearcher(provider)
	fallback := topicsCore.NewFallbackBuilder(rand.New(rand.NewSource(time.Now().UnixNano())))
	topicsSvc := topicsCore.NewService(generator, store, fallback, cfg.Topics.MaxStarterWords)
	substituteSvc := substituteCore.NewService(generator)

	common.LogInfo("Services initialized",
		zap.String("recipe_provider", provider.Name()),
		zap.Bool("generation_enabled", generator.Enabled()),
		zap.Bool("cache_enabled", store != nil),
	)

	// 全局中間件：設置超時與上下文物件
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("recipe_provider", provider.Name())
		if store != nil {
			c.Set("topic_cache", store)
		}

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			common.AbortWithError(c, common.ErrGatewayTimeout)
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")

	// 限流：固定視窗套用在整個 API 路由組
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		api.Use(middleware.RateLimit(limiter, int(cfg.RateLimit.Window.Seconds())))
	}

	recipes := recipeHandler.NewHandler(searcher)
	topics := topicsHandler.NewHandler(topicsSvc)
	substitutions := substituteHandler.NewHandler(substituteSvc)

	// 食譜搜尋與查詢
	recipeGroup := api.Group("/recipes")
	{
		recipeGroup.GET("/search", recipes.Search)
		recipeGroup.GET("/:id", recipes.GetByID)
	}

	// 話題生成：高成本端點額外加最小間隔限流
	generationGroup := api.Group("")
	if cfg.RateLimit.Enabled && cfg.RateLimit.MinInterval > 0 {
		interval := ratelimit.NewIntervalLimiter(cfg.RateLimit.MinInterval)
		generationGroup.Use(middleware.MinInterval(interval))
	}
	{
		generationGroup.POST("/topics", topics.Generate)
		generationGroup.POST("/offtable", topics.OffTable)
	}

	// 食材替換
	substitutionGroup := api.Group("/substitutions")
	{
		substitutionGroup.POST("/explain", substitutions.Explain)
		substitutionGroup.GET("/options", substitutions.Options)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.String("recipe_provider", provider.Name()),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
