package topics

// Vibe 用餐情境，封閉枚舉；決定生成內容的語氣與限制
type Vibe string

const (
	VibeFamily     Vibe = "Family"
	VibeFriends    Vibe = "Friends"
	VibeColleagues Vibe = "Colleagues"
	VibeDate       Vibe = "Date"
	VibeKids       Vibe = "Kids"
)

// Vibes 全部情境，依固定順序
var Vibes = []Vibe{VibeFamily, VibeFriends, VibeColleagues, VibeDate, VibeKids}

// RecipeContext 話題生成所需的最小食譜脈絡
type RecipeContext struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" binding:"required"`
	Cuisine     string   `json:"cuisine"`
	DietFlags   []string `json:"dietFlags"`
	Ingredients []string `json:"ingredients"`
}

// Request 話題生成請求；Vibe 與 Theme 擇一提供
type Request struct {
	Recipe              *RecipeContext `json:"recipe,omitempty"`
	Vibe                string         `json:"vibe,omitempty"`
	Theme               string         `json:"theme,omitempty"`
	People              int            `json:"people"`
	DietaryOrIngredient string         `json:"dietaryOrIngredient,omitempty"`
	PreviousHashes      []string       `json:"previousHashes,omitempty"`
	Preview             bool           `json:"preview,omitempty"`
}

// Payload 生成結果的嚴格形狀：恰好 3 條開場白與 1 條趣聞
type Payload struct {
	Starters []string `json:"starters"`
	Fact     string   `json:"fun_fact"`
}

// Response 對外回應；Hashes 供後續請求避免重複內容
type Response struct {
	Starters []string `json:"starters"`
	Fact     string   `json:"fun_fact"`
	Hashes   []string `json:"hashes"`
	Fallback bool     `json:"-"`
	CacheHit bool     `json:"-"`
}
