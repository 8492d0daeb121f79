package topics

import (
	"fmt"
	"strings"

	"table-talk/internal/pkg/common"
)

// systemPrompt 話題生成的系統提示，要求回傳嚴格 JSON
const systemPrompt = `You are a dinner-table conversation host. ` +
	`Respond with a single JSON object only, no markdown, no commentary. ` +
	`The object must have exactly two keys: "starters" (an array of 3 short conversation starter strings) ` +
	`and "fun_fact" (one short food-related fact as a string). Keep every sentence friendly and concise.`

// vibeGuidance 各場合的語氣限制
var vibeGuidance = map[Vibe]string{
	VibeFamily:     "Keep the tone warm and inclusive so every generation at the table can join in.",
	VibeFriends:    "Keep the tone casual and playful, the kind of questions old friends riff on.",
	VibeColleagues: "Keep the tone professional and light. Avoid politics, religion, salaries, and anything sensitive.",
	VibeDate:       "Keep the tone warm and a little charming, easy openers that invite stories, nothing interrogating.",
	VibeKids:       "Use simple words a young child understands. Keep questions short, silly, and concrete.",
}

// BuildUserPrompt 依請求組出使用者提示
func BuildUserPrompt(req *Request) string {
	var b strings.Builder

	if req.Recipe != nil {
		fmt.Fprintf(&b, "The table is about to share: %s.\n", req.Recipe.Title)
		if req.Recipe.Cuisine != "" {
			fmt.Fprintf(&b, "Cuisine: %s.\n", req.Recipe.Cuisine)
		}
		if len(req.Recipe.DietFlags) > 0 {
			fmt.Fprintf(&b, "Dietary notes: %s.\n", common.FormatList(req.Recipe.DietFlags))
		}
		if len(req.Recipe.Ingredients) > 0 {
			fmt.Fprintf(&b, "Key ingredients: %s.\n", common.FormatList(req.Recipe.Ingredients))
		}
	} else if req.Theme != "" {
		fmt.Fprintf(&b, "The dinner theme is: %s.\n", req.Theme)
	}

	fmt.Fprintf(&b, "There are %d people at the table. The vibe is %s.\n", req.People, canonicalOrTheme(req))
	if guidance, ok := vibeGuidance[CanonicalVibe(req.Vibe)]; ok {
		b.WriteString(guidance)
		b.WriteString("\n")
	}
	if req.DietaryOrIngredient != "" {
		fmt.Fprintf(&b, "If it fits naturally, work in this hint: %s.\n", req.DietaryOrIngredient)
	}
	if len(req.PreviousHashes) > 0 {
		fmt.Fprintf(&b, "Avoid ideas similar to these hashes: %s.\n", common.FormatList(req.PreviousHashes))
	}
	b.WriteString("Generate 3 conversation starters and 1 fun food fact.")

	return b.String()
}

func canonicalOrTheme(req *Request) string {
	if IsKnownVibe(req.Vibe) {
		return string(CanonicalVibe(req.Vibe))
	}
	if req.Theme != "" {
		return req.Theme
	}
	return string(VibeFriends)
}
