package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipe() *Recipe {
	return &Recipe{
		ID:          "test-tofu",
		Title:       "Test Tofu Bowl",
		Ingredients: []string{"tofu", "soy sauce", "rice", "scallions"},
		DietFlags:   []DietFlag{DietVegan, DietVegetarian},
	}
}

func TestScoreRecipeBase(t *testing.T) {
	r := testRecipe()

	// 2 of 4 ingredients on hand, no penalties, no diet filter
	score := ScoreRecipe(r, []string{"tofu", "rice"}, nil, nil)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestScoreRecipeDeterministic(t *testing.T) {
	r := testRecipe()
	have := []string{"tofu", "soy sauce"}
	exclude := []string{"peanut"}
	diets := []DietFlag{DietVegan}

	first := ScoreRecipe(r, have, exclude, diets)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreRecipe(r, have, exclude, diets))
	}
}

func TestScoreRecipeExclusionPenalty(t *testing.T) {
	r := testRecipe()

	clean := ScoreRecipe(r, []string{"tofu"}, nil, nil)
	penalized := ScoreRecipe(r, []string{"tofu"}, []string{"soy"}, nil)
	assert.InDelta(t, clean-0.2, penalized, 1e-9)
}

func TestScoreRecipeDietBonus(t *testing.T) {
	r := testRecipe()

	without := ScoreRecipe(r, []string{"tofu"}, nil, nil)
	with := ScoreRecipe(r, []string{"tofu"}, nil, []DietFlag{DietVegan})
	assert.InDelta(t, without+0.15, with, 1e-9)

	// 不滿足飲食條件時沒有加分
	unmet := ScoreRecipe(r, []string{"tofu"}, nil, []DietFlag{DietGlutenFree})
	assert.InDelta(t, without, unmet, 1e-9)
}

func TestScoreRecipeClamped(t *testing.T) {
	r := testRecipe()

	// 大量排除命中也只會夾在 0，不會變成負數
	heavy := ScoreRecipe(r, nil, []string{"tofu", "soy", "rice", "scallions"}, nil)
	assert.Equal(t, 0.0, heavy)

	// 全部食材都有加上飲食加分也封頂在 1
	full := ScoreRecipe(r, []string{"tofu", "soy sauce", "rice", "scallions"}, nil, []DietFlag{DietVegan})
	assert.LessOrEqual(t, full, 1.0)
	assert.GreaterOrEqual(t, full, 0.0)
}

func TestApplyMatchScoreRounding(t *testing.T) {
	s := ApplyMatchScore(Summary{ID: "x"}, 0.6666666)
	require.NotNil(t, s.MatchScore)
	assert.Equal(t, 0.667, *s.MatchScore)

	s = ApplyMatchScore(Summary{ID: "y"}, 0.1234)
	require.NotNil(t, s.MatchScore)
	assert.Equal(t, 0.123, *s.MatchScore)
}
