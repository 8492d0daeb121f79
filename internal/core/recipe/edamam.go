package recipe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"table-talk/internal/infrastructure/config"
	"table-talk/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// EdamamProvider 透過 Edamam Recipe Search API 搜尋食譜
type EdamamProvider struct {
	client *resty.Client
	appID  string
	appKey string
}

// NewEdamamProvider 創建 Edamam 資料來源
func NewEdamamProvider(cfg *config.Config) *EdamamProvider {
	client := resty.New().
		SetBaseURL("https://api.edamam.com").
		SetTimeout(cfg.Providers.Timeout)

	return &EdamamProvider{
		client: client,
		appID:  cfg.Providers.EdamamAppID,
		appKey: cfg.Providers.EdamamAppKey,
	}
}

func (p *EdamamProvider) Name() string { return "edamam" }

// edamamRecipe Edamam 的原生回傳格式
type edamamRecipe struct {
	URI             string   `json:"uri"`
	Label           string   `json:"label"`
	Image           string   `json:"image"`
	CuisineType     []string `json:"cuisineType"`
	TotalTime       float64  `json:"totalTime"`
	IngredientLines []string `json:"ingredientLines"`
	DietLabels      []string `json:"dietLabels"`
	HealthLabels    []string `json:"healthLabels"`
	MealType        []string `json:"mealType"`
	DishType        []string `json:"dishType"`
	Instructions    []string `json:"instructions"`
	URL             string   `json:"url"`
}

type edamamSearchResponse struct {
	Hits []struct {
		Recipe edamamRecipe `json:"recipe"`
	} `json:"hits"`
}

var edamamFields = []string{
	"uri", "label", "image", "cuisineType", "totalTime",
	"ingredientLines", "dietLabels", "healthLabels", "dishType", "mealType", "url",
}

// Search 將標準參數轉成 Edamam 查詢，再把結果映射回標準格式並評分
func (p *EdamamProvider) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	values := url.Values{}
	values.Set("type", "public")
	values.Set("app_id", p.appID)
	values.Set("app_key", p.appKey)
	values.Set("random", "false")
	for _, field := range edamamFields {
		values.Add("field", field)
	}
	if params.Query != "" {
		values.Set("q", params.Query)
	}
	for _, diet := range params.Diets {
		values.Add("health", diet)
	}
	for _, item := range params.Exclude {
		values.Add("excluded", item)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(values).
		Get("/api/recipes/v2")
	if err != nil {
		return nil, &common.UpstreamError{Provider: "edamam", Transient: true, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &common.UpstreamError{
			Provider:  "edamam",
			Status:    resp.StatusCode(),
			Transient: resp.StatusCode() >= 500 || resp.StatusCode() == http.StatusTooManyRequests,
			Err:       fmt.Errorf("search failed with status %d", resp.StatusCode()),
		}
	}

	var data edamamSearchResponse
	if err := common.ParseJSONBytes(resp.Body(), &data); err != nil {
		return nil, &common.UpstreamError{Provider: "edamam", Transient: false, Err: err}
	}

	pool := make([]Recipe, 0, len(data.Hits))
	for i := range data.Hits {
		pool = append(pool, p.toDetail(&data.Hits[i].Recipe))
	}
	return scorePool(pool, params), nil
}

// GetByID 以 URI 取回完整食譜；識別碼為 URL 編碼後的 Edamam URI
func (p *EdamamProvider) GetByID(ctx context.Context, id string) (*Recipe, error) {
	uri, err := url.QueryUnescape(id)
	if err != nil {
		uri = id
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("type", "public").
		SetQueryParam("app_id", p.appID).
		SetQueryParam("app_key", p.appKey).
		SetQueryParam("uri", uri).
		Get("/api/recipes/v2/by-uri")
	if err != nil {
		return nil, &common.UpstreamError{Provider: "edamam", Transient: true, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &common.UpstreamError{
			Provider:  "edamam",
			Status:    resp.StatusCode(),
			Transient: resp.StatusCode() >= 500 || resp.StatusCode() == http.StatusTooManyRequests,
			Err:       fmt.Errorf("detail failed with status %d", resp.StatusCode()),
		}
	}

	var data edamamSearchResponse
	if err := common.ParseJSONBytes(resp.Body(), &data); err != nil {
		return nil, &common.UpstreamError{Provider: "edamam", Transient: false, Err: err}
	}
	if len(data.Hits) == 0 {
		return nil, nil
	}
	detail := p.toDetail(&data.Hits[0].Recipe)
	return &detail, nil
}

// toDetail 將 Edamam 的原生格式映射為標準 Recipe
func (p *EdamamProvider) toDetail(record *edamamRecipe) Recipe {
	flags := make([]string, 0, len(record.DietLabels)+len(record.HealthLabels))
	flags = append(flags, record.DietLabels...)
	flags = append(flags, record.HealthLabels...)

	steps := record.Instructions
	if len(steps) == 0 {
		steps = []string{
			"Review the linked instructions.",
			"Follow steps, adjusting seasoning to taste.",
		}
	}

	image := record.Image
	if image == "" {
		image = "/placeholder.jpg"
	}
	timeMinutes := int(record.TotalTime)
	if timeMinutes <= 0 {
		timeMinutes = 35
	}
	cuisine := "Global"
	if len(record.CuisineType) > 0 {
		cuisine = record.CuisineType[0]
	}
	tags := record.DishType
	if len(tags) == 0 {
		tags = record.MealType
	}

	description := "Inspired by Edamam reference: See instructions link."
	if record.URL != "" {
		description = "Inspired by Edamam reference: " + record.URL
	}

	return Recipe{
		ID:          url.QueryEscape(record.URI),
		Title:       record.Label,
		Description: description,
		Image:       image,
		TimeMinutes: timeMinutes,
		Cuisine:     cuisine,
		DietFlags:   NormalizeDietFilters(flags),
		Tags:        tags,
		Ingredients: record.IngredientLines,
		Steps:       steps,
	}
}
