package recipe

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"table-talk/internal/infrastructure/config"
	"table-talk/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// SpoonacularProvider 透過 Spoonacular API 搜尋食譜
type SpoonacularProvider struct {
	client *resty.Client
	apiKey string
}

// NewSpoonacularProvider 創建 Spoonacular 資料來源
func NewSpoonacularProvider(cfg *config.Config) *SpoonacularProvider {
	client := resty.New().
		SetBaseURL("https://api.spoonacular.com").
		SetTimeout(cfg.Providers.Timeout)

	return &SpoonacularProvider{
		client: client,
		apiKey: cfg.Providers.SpoonacularAPIKey,
	}
}

func (p *SpoonacularProvider) Name() string { return "spoonacular" }

// spoonacularRecord Spoonacular 的原生回傳格式
type spoonacularRecord struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Summary             string   `json:"summary"`
	Image               string   `json:"image"`
	ReadyInMinutes      int      `json:"readyInMinutes"`
	Cuisines            []string `json:"cuisines"`
	Diets               []string `json:"diets"`
	DishTypes           []string `json:"dishTypes"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
		Name     string `json:"name"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

type spoonacularSearchResponse struct {
	Results []spoonacularRecord `json:"results"`
}

// Search 將標準參數轉成 Spoonacular 查詢，再把結果映射回標準格式並評分
func (p *SpoonacularProvider) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", p.apiKey).
		SetQueryParam("number", "30").
		SetQueryParam("addRecipeInformation", "true")

	if params.Query != "" {
		req.SetQueryParam("query", params.Query)
	}
	if len(params.Have) > 0 {
		req.SetQueryParam("includeIngredients", strings.Join(params.Have, ","))
	}
	if len(params.Exclude) > 0 {
		req.SetQueryParam("excludeIngredients", strings.Join(params.Exclude, ","))
	}
	if len(params.Diets) > 0 {
		req.SetQueryParam("diet", strings.Join(params.Diets, ","))
	}

	resp, err := req.Get("/recipes/complexSearch")
	if err != nil {
		return nil, &common.UpstreamError{Provider: "spoonacular", Transient: true, Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &common.UpstreamError{
			Provider:  "spoonacular",
			Status:    resp.StatusCode(),
			Transient: resp.StatusCode() >= 500 || resp.StatusCode() == http.StatusTooManyRequests,
			Err:       fmt.Errorf("search failed with status %d", resp.StatusCode()),
		}
	}

	var data spoonacularSearchResponse
	if err := common.ParseJSONBytes(resp.Body(), &data); err != nil {
		return nil, &common.UpstreamError{Provider: "spoonacular", Transient: false, Err: err}
	}

	pool := make([]Recipe, 0, len(data.Results))
	for i := range data.Results {
		pool = append(pool, p.toDetail(&data.Results[i]))
	}
	return scorePool(pool, params), nil
}

// GetByID 取得單一食譜的完整資訊
func (p *SpoonacularProvider) GetByID(ctx context.Context, id string) (*Recipe, error) {
	if _, err := strconv.Atoi(id); err != nil {
		// 非 Spoonacular 的識別碼，視為查無此筆
		return nil, nil
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", p.apiKey).
		Get(fmt.Sprintf("/recipes/%s/information", id))
	if err != nil {
		return nil, &common.UpstreamError{Provider: "spoonacular", Transient: true, Err: err}
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &common.UpstreamError{
			Provider:  "spoonacular",
			Status:    resp.StatusCode(),
			Transient: resp.StatusCode() >= 500 || resp.StatusCode() == http.StatusTooManyRequests,
			Err:       fmt.Errorf("detail failed with status %d", resp.StatusCode()),
		}
	}

	var record spoonacularRecord
	if err := common.ParseJSONBytes(resp.Body(), &record); err != nil {
		return nil, &common.UpstreamError{Provider: "spoonacular", Transient: false, Err: err}
	}
	detail := p.toDetail(&record)
	return &detail, nil
}

// toDetail 將 Spoonacular 的原生格式映射為標準 Recipe
func (p *SpoonacularProvider) toDetail(record *spoonacularRecord) Recipe {
	ingredients := make([]string, 0, len(record.ExtendedIngredients))
	for _, item := range record.ExtendedIngredients {
		ingredients = append(ingredients, strings.TrimSpace(item.Original))
	}

	var steps []string
	if len(record.AnalyzedInstructions) > 0 {
		for _, step := range record.AnalyzedInstructions[0].Steps {
			steps = append(steps, strings.TrimSpace(step.Step))
		}
	}
	if len(steps) == 0 {
		steps = []string{"Prepare ingredients", "Cook according to instructions."}
	}

	image := record.Image
	if image == "" {
		image = "/placeholder.jpg"
	}
	timeMinutes := record.ReadyInMinutes
	if timeMinutes <= 0 {
		timeMinutes = 30
	}
	cuisine := "Fusion"
	if len(record.Cuisines) > 0 {
		cuisine = record.Cuisines[0]
	}

	return Recipe{
		ID:          strconv.Itoa(record.ID),
		Title:       record.Title,
		Description: strings.TrimSpace(stripHTML(record.Summary)),
		Image:       image,
		TimeMinutes: timeMinutes,
		Cuisine:     cuisine,
		DietFlags:   NormalizeDietFilters(record.Diets),
		Tags:        record.DishTypes,
		Ingredients: ingredients,
		Steps:       steps,
	}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML 去除描述欄位夾帶的標記
func stripHTML(value string) string {
	return htmlTagPattern.ReplaceAllString(value, "")
}
