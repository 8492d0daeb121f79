package recipe

// DietFlag 飲食限制標籤，封閉枚舉
type DietFlag string

const (
	DietVegetarian  DietFlag = "Vegetarian"
	DietVegan       DietFlag = "Vegan"
	DietGlutenFree  DietFlag = "Gluten-Free"
	DietDairyFree   DietFlag = "Dairy-Free"
	DietNutFree     DietFlag = "Nut-Free"
	DietHalal       DietFlag = "Halal"
	DietKosher      DietFlag = "Kosher"
	DietPescatarian DietFlag = "Pescatarian"
)

// AllDietFlags 依固定順序列出全部標籤，正規化時沿用此順序
var AllDietFlags = []DietFlag{
	DietVegetarian,
	DietVegan,
	DietGlutenFree,
	DietDairyFree,
	DietNutFree,
	DietHalal,
	DietKosher,
	DietPescatarian,
}

// Recipe 標準化後的完整食譜
type Recipe struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	TimeMinutes int        `json:"timeMinutes"`
	Cuisine     string     `json:"cuisine"`
	DietFlags   []DietFlag `json:"dietFlags"`
	Tags        []string   `json:"tags"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
}

// Summary 食譜摘要，為 Recipe 去掉食材與步驟後的投影
type Summary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	TimeMinutes int        `json:"timeMinutes"`
	Cuisine     string     `json:"cuisine"`
	DietFlags   []DietFlag `json:"dietFlags"`
	Tags        []string   `json:"tags"`
	MatchScore  *float64   `json:"matchScore,omitempty"`

	// searchText 完整食譜的可搜尋文字（含食材），文字查詢過濾用，不輸出
	searchText string
}

// Summarize 由完整食譜產生摘要
func (r *Recipe) Summarize() Summary {
	return Summary{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		TimeMinutes: r.TimeMinutes,
		Cuisine:     r.Cuisine,
		DietFlags:   r.DietFlags,
		Tags:        r.Tags,
		searchText:  SearchText(r),
	}
}

// SearchParams 標準化後的搜尋參數
type SearchParams struct {
	Query   string
	Diets   []string
	Have    []string
	Exclude []string
	People  int
}
