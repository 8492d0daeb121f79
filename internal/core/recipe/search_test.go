package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalSearcher() *Searcher {
	return NewSearcher(NewLocalProvider())
}

func TestSearchVeganWithTofuExcludingPeanut(t *testing.T) {
	searcher := newLocalSearcher()

	results, err := searcher.Search(context.Background(), SearchParams{
		Diets:   []string{"vegan"},
		Have:    []string{"tofu"},
		Exclude: []string{"peanut"},
		People:  2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)

	ids := make(map[string]bool)
	for _, summary := range results {
		ids[summary.ID] = true
	}
	assert.True(t, ids["ginger-tofu-stirfry"], "vegan tofu recipe should survive")
	assert.False(t, ids["peanut-noodle-bowl"], "peanut recipe must be excluded")
	assert.False(t, ids["honey-garlic-chicken"], "non-vegan recipe must be filtered")

	// 有 tofu 又滿足 vegan 的食譜應排在最前面
	assert.Equal(t, "ginger-tofu-stirfry", results[0].ID)
}

func TestSearchQueryTokenFiltering(t *testing.T) {
	searcher := newLocalSearcher()

	results, err := searcher.Search(context.Background(), SearchParams{
		Query:  "salmon",
		People: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "lemon-herb-salmon", results[0].ID)
}

func TestSearchQueryMatchesIngredientText(t *testing.T) {
	searcher := newLocalSearcher()

	// "capers" 只出現在食材欄位，不在標題或描述裡
	results, err := searcher.Search(context.Background(), SearchParams{
		Query:  "capers",
		People: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "lemon-herb-salmon", results[0].ID)
}

func TestSearchQueryRelaxation(t *testing.T) {
	searcher := newLocalSearcher()

	// 查詢字串不命中任何結果時，放寬查詢但保留飲食條件
	results, err := searcher.Search(context.Background(), SearchParams{
		Query:  "zzzzz-no-such-dish",
		Diets:  []string{"vegan"},
		People: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results, "relaxation should return the diet-filtered pool")

	for _, summary := range results {
		assert.Contains(t, summary.DietFlags, DietVegan)
	}
}

func TestSearchRelaxationKeepsExclusions(t *testing.T) {
	searcher := newLocalSearcher()

	results, err := searcher.Search(context.Background(), SearchParams{
		Query:   "zzzzz-no-such-dish",
		Exclude: []string{"peanut"},
		People:  2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, summary := range results {
		assert.NotEqual(t, "peanut-noodle-bowl", summary.ID)
	}
}

func TestSortSummariesTieBreaksOnTime(t *testing.T) {
	scoreA := 0.50000
	scoreB := 0.50005
	scoreC := 0.8

	results := []Summary{
		{ID: "slow", TimeMinutes: 60, MatchScore: &scoreA},
		{ID: "fast", TimeMinutes: 15, MatchScore: &scoreB},
		{ID: "best", TimeMinutes: 90, MatchScore: &scoreC},
	}

	sortSummaries(results)

	// 最高分在前；分差小於 0.0001 時時間短者在前
	assert.Equal(t, "best", results[0].ID)
	assert.Equal(t, "fast", results[1].ID)
	assert.Equal(t, "slow", results[2].ID)
}

func TestSortSummariesNilScoreTreatedAsZero(t *testing.T) {
	high := 0.9
	results := []Summary{
		{ID: "unscored", TimeMinutes: 10},
		{ID: "scored", TimeMinutes: 50, MatchScore: &high},
	}

	sortSummaries(results)
	assert.Equal(t, "scored", results[0].ID)
}

func TestGetByIDClone(t *testing.T) {
	searcher := newLocalSearcher()

	first, err := searcher.GetByID(context.Background(), "ginger-tofu-stirfry")
	require.NoError(t, err)
	require.NotNil(t, first)

	// 改動回傳值不可影響內建資料
	first.Ingredients[0] = "mutated"

	second, err := searcher.GetByID(context.Background(), "ginger-tofu-stirfry")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, "mutated", second.Ingredients[0])
}

func TestGetByIDNotFound(t *testing.T) {
	searcher := newLocalSearcher()

	found, err := searcher.GetByID(context.Background(), "no-such-recipe")
	require.NoError(t, err)
	assert.Nil(t, found)
}
