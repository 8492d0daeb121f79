package substitute

import "strings"

// substitutionTable 依飲食需求分類的替換選項；general 一律附加
var substitutionTable = map[string]map[string][]string{
	"vegan": {
		"butter":     {"vegan butter", "olive oil"},
		"milk":       {"oat milk + lemon juice"},
		"buttermilk": {"oat milk + lemon juice"},
		"parmesan":   {"nutritional yeast"},
		"cheese":     {"nutritional yeast"},
		"honey":      {"maple syrup"},
		"egg":        {"flax egg"},
	},
	"vegetarian": {
		"chicken":    {"firm tofu", "chickpeas"},
		"beef":       {"mushrooms", "lentils"},
		"fish sauce": {"soy sauce"},
	},
	"dairy-free": {
		"butter":     {"vegan butter", "olive oil"},
		"milk":       {"oat milk + lemon juice"},
		"buttermilk": {"oat milk + lemon juice"},
		"cream":      {"coconut cream"},
	},
	"gluten-free": {
		"soy sauce": {"tamari", "coconut aminos"},
		"flour":     {"rice flour"},
		"pasta":     {"rice noodles"},
	},
	"nut-free": {
		"peanut butter": {"sunflower seed butter"},
		"almonds":       {"toasted pumpkin seeds"},
	},
	"general": {
		"buttermilk": {"milk + lemon juice"},
		"soy sauce":  {"tamari"},
		"butter":     {"olive oil"},
		"parmesan":   {"nutritional yeast"},
	},
}

// ratioHints 常見替換的份量換算提示
var ratioHints = map[string]string{
	"milk + lemon juice":     "Use 1 cup milk + 1 tbsp lemon.",
	"oat milk + lemon juice": "Use the same volume plus 1 tsp lemon.",
	"tamari":                 "Swap 1:1 for soy sauce.",
	"coconut aminos":         "Use 1.5x for the same saltiness.",
	"nutritional yeast":      "Start with 2 tbsp for cheesy notes.",
	"vegan butter":           "Use equal amount as butter.",
	"olive oil":              "Use slightly less than butter for sautés.",
}

const maxOptions = 3

// Options 依食材與飲食需求收集替換選項，去重後最多回傳三個。
// 先依序套用各飲食分類，再補上通用分類。
func Options(ingredient string, dietFilters []string) []Option {
	normalized := strings.ToLower(strings.TrimSpace(ingredient))
	seen := make(map[string]bool)
	collected := make([]string, 0, maxOptions)

	appendEntries := func(category string) {
		entries, ok := substitutionTable[category]
		if !ok {
			return
		}
		for _, value := range entries[normalized] {
			if !seen[value] {
				seen[value] = true
				collected = append(collected, value)
			}
		}
	}

	for _, diet := range dietFilters {
		appendEntries(strings.ToLower(diet))
	}
	appendEntries("general")

	if len(collected) > maxOptions {
		collected = collected[:maxOptions]
	}

	options := make([]Option, 0, len(collected))
	for _, value := range collected {
		options = append(options, Option{Option: value, Hint: ratioHints[value]})
	}
	return options
}
