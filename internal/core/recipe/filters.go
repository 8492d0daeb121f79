package recipe

import "strings"

// NormalizeDietFilters 將自由輸入正規化為封閉的 DietFlag 集合。
// 大小寫不敏感；未知的值直接丟棄，不會報錯也不會傳遞下去。
func NormalizeDietFilters(values []string) []DietFlag {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	var out []DietFlag
	for _, flag := range AllDietFlags {
		if _, ok := seen[strings.ToLower(string(flag))]; ok {
			out = append(out, flag)
		}
	}
	return out
}

// MatchesDiet 檢查食譜是否滿足「全部」要求的飲食標籤（AND 語義）。
// 空的過濾清單永遠匹配。
func MatchesDiet(flags []DietFlag, diets []DietFlag) bool {
	if len(diets) == 0 {
		return true
	}
	for _, diet := range diets {
		found := false
		for _, flag := range flags {
			if strings.EqualFold(string(flag), string(diet)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SearchText 建立食譜的可搜尋文字：標題、描述、菜系、標籤與食材的小寫串接
func SearchText(r *Recipe) string {
	parts := make([]string, 0, 4+len(r.Ingredients))
	parts = append(parts, r.Title, r.Description, r.Cuisine, strings.Join(r.Tags, " "))
	parts = append(parts, r.Ingredients...)
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchesExclusions 任一排除詞出現在可搜尋文字中即回傳 false。
// 刻意採用子字串比對：排除 "nut" 也會排除 "nutmeg"，這是簡單性優先的取捨。
func MatchesExclusions(r *Recipe, exclude []string) bool {
	if len(exclude) == 0 {
		return true
	}
	haystack := SearchText(r)
	for _, term := range exclude {
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return false
		}
	}
	return true
}
