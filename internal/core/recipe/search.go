package recipe

import (
	"context"
	"sort"
	"strings"

	"table-talk/internal/pkg/common"

	"go.uber.org/zap"
)

// scoreEpsilon 分數差距小於此值視為同分，改以料理時間排序
const scoreEpsilon = 0.0001

// Searcher 搜尋協調器：先嚴格過濾，查無結果時放寬文字查詢
type Searcher struct {
	provider Provider
}

// NewSearcher 創建搜尋協調器
func NewSearcher(provider Provider) *Searcher {
	return &Searcher{provider: provider}
}

// Search 執行搜尋：向資料來源取得候選集（已過濾與評分），
// 再依自由文字查詢的全部 token 做子字串過濾，最後做確定性排序。
// 文字查詢過濾後為空時，放寬查詢重跑過濾（飲食/排除條件不放寬）。
func (s *Searcher) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	pool, err := s.provider.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	results := pool
	query := strings.ToLower(common.NormalizeQuery(params.Query))
	if query != "" {
		tokens := strings.Fields(query)
		filtered := make([]Summary, 0, len(pool))
		for _, summary := range pool {
			if matchesAllTokens(&summary, tokens) {
				filtered = append(filtered, summary)
			}
		}

		if len(filtered) == 0 && len(pool) > 0 {
			// 嚴格過濾沒有任何命中時整個放棄文字查詢，
			// 讓使用者拿到仍符合飲食/排除條件的結果而不是空畫面
			common.LogDebug("Query relaxed after zero hits",
				zap.String("query", common.TruncateForLog(query, 80)),
				zap.Int("pool_size", len(pool)),
			)
			results = pool
		} else {
			results = filtered
		}
	}

	sortSummaries(results)
	return results, nil
}

// GetByID 取得單一食譜
func (s *Searcher) GetByID(ctx context.Context, id string) (*Recipe, error) {
	return s.provider.GetByID(ctx, id)
}

// matchesAllTokens 食譜的可搜尋文字需包含查詢的每一個 token（AND 語義）。
// 摘要在 Summarize 時會帶上完整食譜的可搜尋文字，食材也算在查詢範圍內。
func matchesAllTokens(s *Summary, tokens []string) bool {
	haystack := s.searchText
	if haystack == "" {
		parts := make([]string, 0, 4)
		parts = append(parts, s.Title, s.Description, s.Cuisine, strings.Join(s.Tags, " "))
		haystack = strings.ToLower(strings.Join(parts, " "))
	}
	for _, token := range tokens {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

// sortSummaries 分數高者在前；分數差小於 epsilon 時料理時間短者在前
func sortSummaries(results []Summary) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := scoreOf(&results[i]), scoreOf(&results[j])
		delta := b - a
		if delta > scoreEpsilon {
			return false
		}
		if delta < -scoreEpsilon {
			return true
		}
		return results[i].TimeMinutes < results[j].TimeMinutes
	})
}

func scoreOf(s *Summary) float64 {
	if s.MatchScore == nil {
		return 0
	}
	return *s.MatchScore
}
