package recipe

import (
	"math"
	"strings"

	"table-talk/internal/pkg/common"
)

const (
	exclusionPenalty = 0.2
	dietBonus        = 0.15
)

// ScoreRecipe 計算食譜的匹配分數，純函數且結果落在 [0,1]。
// base = 符合的現有食材數 / max(食譜食材數, 1)
// penalty = 出現的排除食材數 * 0.2
// bonus = 有指定飲食限制且全部滿足時加 0.15
func ScoreRecipe(r *Recipe, have, exclude []string, diets []DietFlag) float64 {
	ingredients := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = strings.ToLower(ing)
	}

	matched := 0
	for _, item := range have {
		item = strings.ToLower(item)
		for _, ing := range ingredients {
			if strings.Contains(ing, item) {
				matched++
				break
			}
		}
	}

	disallowed := 0
	for _, item := range exclude {
		item = strings.ToLower(item)
		for _, ing := range ingredients {
			if strings.Contains(ing, item) {
				disallowed++
				break
			}
		}
	}

	base := float64(matched) / math.Max(float64(len(r.Ingredients)), 1)
	penalty := float64(disallowed) * exclusionPenalty
	bonus := 0.0
	if len(diets) > 0 && MatchesDiet(r.DietFlags, diets) {
		bonus = dietBonus
	}

	return common.Clamp(base-penalty+bonus, 0, 1)
}

// ApplyMatchScore 將分數四捨五入到小數第三位後附加到摘要上
func ApplyMatchScore(s Summary, score float64) Summary {
	rounded := math.Round(score*1000) / 1000
	s.MatchScore = &rounded
	return s
}
