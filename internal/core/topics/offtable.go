package topics

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// OffTableRecipe 請求中的最小食譜資訊
type OffTableRecipe struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Cuisine string `json:"cuisine,omitempty"`
}

// OffTableItem 每道菜對應的「別聊這些」結果
type OffTableItem struct {
	ID       string   `json:"id"`
	OffTitle string   `json:"offTitle"`
	Starters []string `json:"starters"`
	Fact     string   `json:"fun_fact"`
}

// cheekyReplacements 菜名關鍵字對應的玩笑標題，依固定順序取第一個命中
var cheekyReplacements = []struct {
	pattern *regexp.Regexp
	value   string
}{
	{regexp.MustCompile(`(?i)chicken`), "Politely Controversial Chicken"},
	{regexp.MustCompile(`(?i)salmon`), "Salary Negotiation Salmon"},
	{regexp.MustCompile(`(?i)taco`), "Talk-About-Your-Ex Tacos"},
	{regexp.MustCompile(`(?i)pasta`), "Pyramid Scheme Pasta"},
	{regexp.MustCompile(`(?i)bowl`), "Boundary-Pushing Bowl"},
	{regexp.MustCompile(`(?i)steak`), "Steak of Questionable Topics"},
	{regexp.MustCompile(`(?i)soup`), "Spill-The-Tea Soup"},
}

// BuildOffTable 為每道菜組出反向的「千萬別聊」話題，純本地、永不失敗
func BuildOffTable(recipes []OffTableRecipe) []OffTableItem {
	items := make([]OffTableItem, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, OffTableItem{
			ID:       recipe.ID,
			OffTitle: buildCheekyTitle(recipe.Title, recipe.Cuisine),
			Starters: buildOffTableStarters(recipe.Cuisine),
			Fact:     offTableFact,
		})
	}
	return items
}

const offTableFact = "Fun (don’t) fact: Money, politics, and exes are the fastest way to put the brakes on a great meal."

func buildCheekyTitle(title, cuisine string) string {
	base := strings.TrimSpace(title)
	if base == "" {
		base = "Mystery Dish"
	}
	for _, replacement := range cheekyReplacements {
		if replacement.pattern.MatchString(base) {
			return replacement.pattern.ReplaceAllString(base, replacement.value)
		}
	}

	cue := "family gossip"
	if cuisine != "" {
		cue = cuisine + " gossip"
	}
	// 首字可能是多位元組字元，不能用位元組切片大寫
	first, size := utf8.DecodeRuneInString(cue)
	return "Maybe Not Tonight " + string(unicode.ToUpper(first)) + cue[size:]
}

func buildOffTableStarters(cuisine string) []string {
	cuisineText := "tonight"
	if cuisine != "" {
		cuisineText = strings.ToLower(cuisine)
	}
	return []string{
		fmt.Sprintf("Kick things off with a heated debate about politics in %s — or maybe don’t.", cuisineText),
		"Compare everyone’s salaries before the first bite. What could go wrong?",
		"Bring up exes and elaborate family history. Definitely the vibe we’re avoiding.",
	}
}
