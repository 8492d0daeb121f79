package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDietFilters(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []DietFlag
	}{
		{
			name:     "empty input",
			input:    nil,
			expected: nil,
		},
		{
			name:     "case insensitive",
			input:    []string{"VEGAN", "gluten-free"},
			expected: []DietFlag{DietVegan, DietGlutenFree},
		},
		{
			name:     "unknown values dropped",
			input:    []string{"vegan", "keto", "paleo", ""},
			expected: []DietFlag{DietVegan},
		},
		{
			name:     "all garbage reduces to empty",
			input:    []string{"keto", "carnivore"},
			expected: nil,
		},
		{
			name:     "duplicates collapse and output follows canonical order",
			input:    []string{"nut-free", "vegan", "Vegan", "vegetarian"},
			expected: []DietFlag{DietVegetarian, DietVegan, DietNutFree},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDietFilters(tt.input))
		})
	}
}

func TestMatchesDiet(t *testing.T) {
	flags := []DietFlag{DietVegan, DietVegetarian, DietNutFree}

	assert.True(t, MatchesDiet(flags, nil), "empty filter always matches")
	assert.True(t, MatchesDiet(flags, []DietFlag{DietVegan}))
	assert.True(t, MatchesDiet(flags, []DietFlag{DietVegan, DietNutFree}), "AND semantics with all present")
	assert.False(t, MatchesDiet(flags, []DietFlag{DietVegan, DietGlutenFree}), "one missing flag fails")
	assert.True(t, MatchesDiet([]DietFlag{"vegan"}, []DietFlag{DietVegan}), "flag comparison is case-insensitive")
}

func TestMatchesExclusions(t *testing.T) {
	r := &Recipe{
		Title:       "Spiced Nutmeg Porridge",
		Description: "A cozy breakfast bowl",
		Cuisine:     "British",
		Ingredients: []string{"oats", "milk", "nutmeg"},
	}

	assert.True(t, MatchesExclusions(r, nil), "empty exclude list keeps the recipe")
	assert.False(t, MatchesExclusions(r, []string{"milk"}))
	assert.False(t, MatchesExclusions(r, []string{"MILK"}), "matching is case-insensitive after lowering")

	// 子字串比對：排除 nut 也會排掉 nutmeg
	assert.False(t, MatchesExclusions(r, []string{"nut"}))
	assert.True(t, MatchesExclusions(r, []string{"peanut"}))
}

func TestSearchText(t *testing.T) {
	r := &Recipe{
		Title:       "Ginger Tofu Stir-Fry",
		Description: "Quick weeknight dinner",
		Cuisine:     "Chinese",
		Tags:        []string{"quick", "weeknight"},
		Ingredients: []string{"tofu", "ginger"},
	}

	text := SearchText(r)
	assert.Contains(t, text, "ginger tofu stir-fry")
	assert.Contains(t, text, "chinese")
	assert.Contains(t, text, "weeknight")
	assert.Contains(t, text, "tofu")
	assert.Equal(t, text, "ginger tofu stir-fry quick weeknight dinner chinese quick weeknight tofu ginger")
}
