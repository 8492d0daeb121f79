package recipe

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdamamToDetail(t *testing.T) {
	p := &EdamamProvider{}

	detail := p.toDetail(&edamamRecipe{
		URI:             "http://www.edamam.com/ontologies/edamam.owl#recipe_abc123",
		Label:           "Lentil Soup",
		CuisineType:     []string{"mediterranean"},
		TotalTime:       45,
		IngredientLines: []string{"1 cup lentils", "1 onion"},
		DietLabels:      []string{"Vegan"},
		HealthLabels:    []string{"Gluten-Free", "Sugar-Conscious"},
		DishType:        []string{"soup"},
		URL:             "https://example.com/lentil-soup",
	})

	assert.Equal(t, url.QueryEscape("http://www.edamam.com/ontologies/edamam.owl#recipe_abc123"), detail.ID)
	assert.Equal(t, "Lentil Soup", detail.Title)
	assert.Equal(t, "mediterranean", detail.Cuisine)
	assert.Equal(t, 45, detail.TimeMinutes)
	assert.Contains(t, detail.Description, "https://example.com/lentil-soup")
	// Edamam 標籤正規化成封閉的飲食集合，不認識的丟棄
	assert.ElementsMatch(t, []DietFlag{DietVegan, DietGlutenFree}, detail.DietFlags)
	assert.Equal(t, []string{"soup"}, detail.Tags)
}

func TestEdamamToDetailDefaults(t *testing.T) {
	p := &EdamamProvider{}

	detail := p.toDetail(&edamamRecipe{URI: "u", Label: "Bare"})
	assert.Equal(t, "/placeholder.jpg", detail.Image)
	assert.Equal(t, 35, detail.TimeMinutes)
	assert.Equal(t, "Global", detail.Cuisine)
	require.NotEmpty(t, detail.Steps)
}
