package substitute

import (
	"net/http"

	"table-talk/internal/core/substitute"
	"table-talk/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

const maxDietFilters = 8

// Handler 食材替換處理器
type Handler struct {
	service *substitute.Service
}

// NewHandler 建立替換處理器
func NewHandler(service *substitute.Service) *Handler {
	return &Handler{service: service}
}

// Explain 處理 POST /substitutions/explain
func (h *Handler) Explain(c *gin.Context) {
	var req substitute.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.AbortWithError(c, common.ErrInvalidRequest)
		return
	}

	// Explain 永不失敗，內部失敗時退回固定句型
	c.JSON(http.StatusOK, h.service.Explain(c.Request.Context(), &req))
}

// Options 處理 GET /substitutions/options
func (h *Handler) Options(c *gin.Context) {
	ingredient := c.Query("ingredient")
	if ingredient == "" {
		common.AbortWithError(c, common.ErrInvalidRequest.WithMessage("ingredient is required"))
		return
	}

	diets := c.QueryArray("diet")
	if len(diets) > maxDietFilters {
		common.AbortWithError(c, common.ErrInvalidRequest.WithMessage("too many diet filters"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": substitute.Options(ingredient, diets)})
}
