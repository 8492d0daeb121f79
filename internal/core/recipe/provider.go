package recipe

import (
	"context"

	"table-talk/internal/infrastructure/config"
	"table-talk/internal/pkg/common"

	"go.uber.org/zap"
)

// Provider 定義食譜資料來源介面
type Provider interface {
	// Name 資料來源名稱，用於日誌與健康檢查
	Name() string

	// Search 回傳已套用飲食/排除過濾與評分的摘要清單
	Search(ctx context.Context, params SearchParams) ([]Summary, error)

	// GetByID 取得完整食譜，找不到時回傳 (nil, nil)
	GetByID(ctx context.Context, id string) (*Recipe, error)
}

// SelectProvider 依固定優先順序選擇資料來源：Spoonacular → Edamam → 本地資料。
// 啟動時決定一次，之後注入給各 handler 使用。
func SelectProvider(cfg *config.Config) Provider {
	local := NewLocalProvider()

	if cfg.Providers.SpoonacularAPIKey != "" {
		common.LogInfo("Recipe provider selected", zap.String("provider", "spoonacular"))
		return WithLocalFallback(NewSpoonacularProvider(cfg), local)
	}
	if cfg.Providers.EdamamAppID != "" && cfg.Providers.EdamamAppKey != "" {
		common.LogInfo("Recipe provider selected", zap.String("provider", "edamam"))
		return WithLocalFallback(NewEdamamProvider(cfg), local)
	}

	common.LogInfo("Recipe provider selected", zap.String("provider", "local"))
	return local
}

// fallbackProvider 包裝任一外部來源，失敗時退回本地資料而不是把錯誤往外拋
type fallbackProvider struct {
	name    string
	primary Provider
	local   Provider
}

// WithLocalFallback 建立帶本地退路的資料來源裝飾器
func WithLocalFallback(primary Provider, local Provider) Provider {
	return &fallbackProvider{name: primary.Name(), primary: primary, local: local}
}

func (p *fallbackProvider) Name() string { return p.name }

func (p *fallbackProvider) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	results, err := p.primary.Search(ctx, params)
	if err != nil {
		common.LogWarn("Upstream search failed, falling back to local dataset",
			zap.String("provider", p.name),
			zap.Error(err),
		)
		return p.local.Search(ctx, params)
	}
	return results, nil
}

// scorePool 對映射後的外部食譜套用與本地路徑完全相同的過濾與評分，
// 確保排序結果與資料來源無關
func scorePool(pool []Recipe, params SearchParams) []Summary {
	diets := NormalizeDietFilters(params.Diets)
	have := lowerAll(params.Have)
	exclude := lowerAll(params.Exclude)

	results := make([]Summary, 0, len(pool))
	for i := range pool {
		r := &pool[i]
		if len(diets) > 0 && !MatchesDiet(r.DietFlags, diets) {
			continue
		}
		if !MatchesExclusions(r, exclude) {
			continue
		}
		score := ScoreRecipe(r, have, exclude, diets)
		results = append(results, ApplyMatchScore(r.Summarize(), score))
	}
	return results
}

func (p *fallbackProvider) GetByID(ctx context.Context, id string) (*Recipe, error) {
	detail, err := p.primary.GetByID(ctx, id)
	if err != nil {
		common.LogWarn("Upstream detail lookup failed, falling back to local dataset",
			zap.String("provider", p.name),
			zap.String("recipe_id", common.TruncateForLog(id, 64)),
			zap.Error(err),
		)
		return p.local.GetByID(ctx, id)
	}
	if detail == nil {
		// 搜尋退回本地後，前端拿到的是本地 ID；外部來源查不到時也要走本地
		return p.local.GetByID(ctx, id)
	}
	return detail, nil
}
