package topics

import (
	"net/http"

	"table-talk/internal/core/topics"
	"table-talk/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 話題生成處理器
type Handler struct {
	service *topics.Service
}

// NewHandler 建立話題處理器
func NewHandler(service *topics.Service) *Handler {
	return &Handler{service: service}
}

// Generate 處理 POST /topics
func (h *Handler) Generate(c *gin.Context) {
	var req topics.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		common.AbortWithError(c, common.ErrInvalidRequest)
		return
	}

	// preview 也可用查詢參數開啟，方便前端輕量預覽
	if c.Query("preview") == "true" {
		req.Preview = true
	}

	resp, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		if common.IsValidationError(err) {
			common.AbortWithError(c, common.ErrInvalidRequest.WithMessage(err.Error()))
			return
		}
		common.LogError("話題生成失敗", zap.Error(err))
		common.AbortWithError(c, common.ErrInternalError)
		return
	}

	if resp.Fallback {
		c.Header("X-Topics-Source", "fallback")
	}
	if resp.CacheHit {
		c.Header("X-Topics-Source", "cache")
	}
	c.JSON(http.StatusOK, resp)
}

// offTableRequest 反向話題請求，食譜列表可為空
type offTableRequest struct {
	Recipes []topics.OffTableRecipe `json:"recipes"`
}

// OffTable 處理 POST /offtable
func (h *Handler) OffTable(c *gin.Context) {
	var req offTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 與原始行為一致：格式錯誤時當作空列表處理
		req.Recipes = nil
	}

	c.JSON(http.StatusOK, gin.H{"items": topics.BuildOffTable(req.Recipes)})
}
