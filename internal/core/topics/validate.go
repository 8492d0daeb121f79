package topics

import (
	"regexp"
	"strings"

	"table-talk/internal/pkg/common"
)

const (
	// 封閉情境（topicRequestSchema）的人數上下限
	minPeople = 2
	maxPeople = 12

	// 自由主題請求沿用 API 層的人數界線
	minPeopleLoose = 1
	maxPeopleLoose = 16

	maxThemeLength = 30
	maxHintLength  = 60
)

// softDenylist 命中即為硬性驗證錯誤，不做靜默清洗；集中於此方便擴充
var softDenylist = []string{"slur1", "slur2"}

var hintCharset = regexp.MustCompile(`^[a-zA-Z0-9\s,'-]+$`)

// edgePunctuation 提示文字前後允許剝除的標點
const edgePunctuation = ",.;:!?-"

// ValidateRequest 驗證話題請求並就地正規化可選欄位。
// 驗證失敗回傳 ValidationError；一律在任何生成動作之前執行。
func ValidateRequest(req *Request) error {
	if req.Recipe == nil && req.Vibe == "" && req.Theme == "" {
		return common.NewValidationError("provide a recipe, vibe, or theme")
	}
	if req.Recipe != nil && strings.TrimSpace(req.Recipe.Title) == "" {
		return common.NewValidationError("recipe title is required")
	}

	if req.People == 0 {
		req.People = 2
	}

	if IsKnownVibe(req.Vibe) {
		// 封閉情境走嚴格的人數區間
		if req.People < minPeople {
			return common.NewValidationError("invite at least 2 guests")
		}
		if req.People > maxPeople {
			return common.NewValidationError("keep it to 12 guests or fewer")
		}
	} else {
		if req.Vibe != "" && req.Theme == "" {
			// 未知的 vibe 當作自由主題使用
			req.Theme = req.Vibe
			req.Vibe = ""
		}
		if req.People < minPeopleLoose || req.People > maxPeopleLoose {
			return common.NewValidationError("people must be between 1 and 16")
		}
	}

	if req.Theme != "" {
		req.Theme = strings.TrimSpace(req.Theme)
		if len(req.Theme) > maxThemeLength {
			return common.NewValidationError("keep the theme under 30 characters")
		}
	}

	// 提示文字：剝除頭尾標點後檢查長度與字元集
	hint := strings.TrimSpace(req.DietaryOrIngredient)
	hint = strings.Trim(hint, edgePunctuation)
	hint = strings.TrimSpace(hint)
	req.DietaryOrIngredient = hint
	if hint != "" {
		if len(hint) > maxHintLength {
			return common.NewValidationError("keep it under 60 characters")
		}
		if !hintCharset.MatchString(hint) {
			return common.NewValidationError("use letters, numbers, spaces, commas, apostrophes, or hyphens")
		}
	}

	// 黑名單命中一律拒絕（fail closed）
	for _, candidate := range denylistCandidates(req) {
		if hasDenylistedTerm(candidate) {
			return common.NewValidationError("request contains a blocked term")
		}
	}

	return nil
}

// IsKnownVibe 檢查是否為封閉情境之一（大小寫不敏感）
func IsKnownVibe(value string) bool {
	for _, vibe := range Vibes {
		if strings.EqualFold(string(vibe), value) {
			return true
		}
	}
	return false
}

// CanonicalVibe 回傳標準大小寫的情境名；未知值回傳空字串
func CanonicalVibe(value string) Vibe {
	for _, vibe := range Vibes {
		if strings.EqualFold(string(vibe), value) {
			return vibe
		}
	}
	return ""
}

func denylistCandidates(req *Request) []string {
	out := []string{req.Vibe, req.Theme, req.DietaryOrIngredient}
	if req.Recipe != nil {
		out = append(out, req.Recipe.Title, req.Recipe.Cuisine)
	}
	return out
}

func hasDenylistedTerm(input string) bool {
	if input == "" {
		return false
	}
	lower := strings.ToLower(input)
	for _, term := range softDenylist {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
