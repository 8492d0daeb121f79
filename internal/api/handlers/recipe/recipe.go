package recipe

import (
	"net/http"
	"net/url"
	"strconv"

	"table-talk/internal/core/recipe"
	"table-talk/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxQueryLength  = 80
	maxDietFilters  = 8
	maxListItems    = 30
	maxIDLength     = 120
	minPeople       = 1
	maxPeople       = 16
	defaultPeople   = 2
	cacheControlHdr = "s-maxage=86400, stale-while-revalidate=86400"
)

// Handler 食譜搜尋與查詢處理器
type Handler struct {
	searcher *recipe.Searcher
}

// NewHandler 建立食譜處理器
func NewHandler(searcher *recipe.Searcher) *Handler {
	return &Handler{searcher: searcher}
}

// Search 處理 GET /recipes/search
func (h *Handler) Search(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		common.AbortWithError(c, common.ErrInvalidRequest.WithMessage(err.Error()))
		return
	}

	results, searchErr := h.searcher.Search(c.Request.Context(), params)
	if searchErr != nil {
		common.LogError("食譜搜尋失敗",
			zap.String("query", params.Query),
			zap.Error(searchErr))
		common.AbortWithError(c, common.ErrInternalError)
		return
	}

	c.Header("Cache-Control", cacheControlHdr)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetByID 處理 GET /recipes/:id
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if decoded, err := url.QueryUnescape(id); err == nil {
		id = decoded
	}
	if id == "" || len(id) > maxIDLength {
		common.AbortWithError(c, common.ErrInvalidRequest)
		return
	}

	found, err := h.searcher.GetByID(c.Request.Context(), id)
	if err != nil {
		common.LogError("食譜查詢失敗",
			zap.String("id", id),
			zap.Error(err))
		common.AbortWithError(c, common.ErrInternalError)
		return
	}
	if found == nil {
		common.AbortWithError(c, common.ErrRecipeNotFound)
		return
	}

	c.Header("Cache-Control", cacheControlHdr)
	c.JSON(http.StatusOK, gin.H{"recipe": found})
}

// parseSearchParams 解析並驗證搜尋查詢參數。
// 重複鍵與逗號分隔兩種寫法都接受，合併後去重。
func parseSearchParams(c *gin.Context) (recipe.SearchParams, error) {
	query := common.NormalizeQuery(c.Query("q"))
	if len(query) > maxQueryLength {
		return recipe.SearchParams{}, common.NewValidationError("query too long")
	}

	diets := collectListParam(c, "diet")
	if len(diets) > maxDietFilters {
		return recipe.SearchParams{}, common.NewValidationError("too many diet filters")
	}

	have := collectListParam(c, "have")
	if len(have) > maxListItems {
		return recipe.SearchParams{}, common.NewValidationError("too many have items")
	}

	exclude := collectListParam(c, "exclude")
	if len(exclude) > maxListItems {
		return recipe.SearchParams{}, common.NewValidationError("too many exclude items")
	}

	people := defaultPeople
	if raw := c.Query("people"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return recipe.SearchParams{}, common.NewValidationError("people must be a whole number")
		}
		people = parsed
	}
	if people < minPeople || people > maxPeople {
		return recipe.SearchParams{}, common.NewValidationError("people must be between 1 and 16")
	}

	return recipe.SearchParams{
		Query:   query,
		Diets:   diets,
		Have:    have,
		Exclude: exclude,
		People:  people,
	}, nil
}

// collectListParam 合併重複查詢鍵與逗號分隔的值
func collectListParam(c *gin.Context, key string) []string {
	values := make([]string, 0)
	for _, raw := range c.QueryArray(key) {
		values = append(values, common.SplitCommaList(raw)...)
	}
	return common.Dedupe(values)
}
