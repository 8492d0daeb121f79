package recipe

import (
	"context"
	"strings"
)

// LocalProvider 在內建資料集上搜尋，不依賴任何外部服務
type LocalProvider struct{}

// NewLocalProvider 創建本地資料來源
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (p *LocalProvider) Name() string { return "local" }

// Search 過濾、評分並回傳摘要；自由文字查詢由上層的搜尋協調器處理
func (p *LocalProvider) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	diets := NormalizeDietFilters(params.Diets)
	have := lowerAll(params.Have)
	exclude := lowerAll(params.Exclude)

	results := make([]Summary, 0, len(localRecipes))
	for i := range localRecipes {
		r := &localRecipes[i]
		if len(diets) > 0 && !MatchesDiet(r.DietFlags, diets) {
			continue
		}
		if !MatchesExclusions(r, exclude) {
			continue
		}
		score := ScoreRecipe(r, have, exclude, diets)
		results = append(results, ApplyMatchScore(r.Summarize(), score))
	}
	return results, nil
}

// GetByID 取得完整食譜；回傳副本避免呼叫端改動唯讀資料
func (p *LocalProvider) GetByID(ctx context.Context, id string) (*Recipe, error) {
	record, ok := recipeIndex[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	clone.Ingredients = append([]string(nil), record.Ingredients...)
	clone.Steps = append([]string(nil), record.Steps...)
	return &clone, nil
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.ToLower(item)
	}
	return out
}
