package substitute

// RecipeContext 替換說明所需的最小食譜脈絡
type RecipeContext struct {
	Title   string   `json:"title" binding:"required,max=120"`
	Cuisine string   `json:"cuisine" binding:"required,max=60"`
	Steps   []string `json:"steps" binding:"required,min=1,max=30"`
}

// ExplainRequest 食材替換說明請求
type ExplainRequest struct {
	From   string        `json:"from" binding:"required,max=60"`
	To     string        `json:"to" binding:"required,max=60"`
	Recipe RecipeContext `json:"recipe" binding:"required"`
}

// ExplainResponse 一句話的烹調調整說明
type ExplainResponse struct {
	Delta string `json:"delta"`
}

// Option 單一替換選項與可選的份量提示
type Option struct {
	Option string `json:"option"`
	Hint   string `json:"hint,omitempty"`
}
