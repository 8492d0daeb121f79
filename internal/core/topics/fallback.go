package topics

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"table-talk/internal/pkg/common"
)

// vibeFallbacks 各場合的預設話題，生成全數失敗時使用
var vibeFallbacks = map[Vibe]Payload{
	VibeFamily: {
		Starters: []string{
			"What’s a small win someone had this week that we can celebrate together?",
			"Which family tradition should we keep alive—or start fresh—this season?",
			"If we planned a surprise day out together, what would we all want to include?",
		},
		Fact: "Tomatoes are technically a fruit, which is why they pair so naturally with both savory and sweet dishes.",
	},
	VibeFriends: {
		Starters: []string{
			"What’s a tiny luxury you treated yourself to recently—or want to soon?",
			"Which adventure or day trip should we plan before the season ends?",
			"What song instantly takes you back to a memorable night with friends?",
		},
		Fact: "Sharing a meal releases oxytocin—the same hormone tied to feelings of trust and bonding.",
	},
	VibeColleagues: {
		Starters: []string{
			"What’s one non-work skill you picked up lately that surprised you?",
			"Which local spot should we recommend to the next out-of-town teammate?",
			"If we could swap roles for a day just for fun, whose job would you try?",
		},
		Fact: "In Japan, slurping noodles is seen as a compliment to the chef—and signals you’re enjoying the meal.",
	},
	VibeDate: {
		Starters: []string{
			"What’s a simple joy you’ve discovered lately that makes the everyday feel special?",
			"If we could teleport to any café or dinner spot in the world, where would we choose?",
			"What’s a story from your week that made you smile more than you expected?",
		},
		Fact: "The tradition of clinking glasses began to ensure drinks were safe—and became a cheerful toast to shared trust.",
	},
	VibeKids: {
		Starters: []string{
			"If tonight’s meal could magically talk, what story would it tell us?",
			"What’s something awesome you’d add to a dream playground?",
			"If you could invent a new ice cream flavor, what would you call it?",
		},
		Fact: "Honey never spoils; archaeologists have found jars in ancient tombs that are still perfectly sweet.",
	},
}

// themeFactTemplates 主題式備援的趣聞模板，%s 代入主題字串
var themeFactTemplates = []string{
	"%s comfort dishes often began as resourceful home cooking—perfect fuel for genuine table talk.",
	"%s cuisine is famous for gathering people—every course is an invitation to share stories.",
	"Hosting a %s dinner is really about connection—flavors, pacing, and tradition all spark conversation.",
}

// FallbackBuilder 產生確定性的本地備援話題。rng 可注入，方便測試固定結果。
type FallbackBuilder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFallbackBuilder 建立備援產生器，rng 為 nil 時不做隨機挑選（固定取第一個模板）
func NewFallbackBuilder(rng *rand.Rand) *FallbackBuilder {
	return &FallbackBuilder{rng: rng}
}

func (f *FallbackBuilder) pick(n int) int {
	if f.rng == nil || n <= 1 {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Intn(n)
}

// Build 依請求內容產生備援話題：有食譜脈絡時以食譜帶入，
// 有主題時代入主題模板，否則回傳該場合的預設話題。
func (f *FallbackBuilder) Build(req *Request) *Response {
	var payload Payload
	switch {
	case req.Recipe != nil && req.Recipe.Title != "":
		payload = f.buildFromRecipe(req)
	case req.Theme != "":
		payload = f.buildFromTheme(req.Theme)
	default:
		payload = f.vibePayload(CanonicalVibe(req.Vibe))
	}
	return newFallbackResponse(payload)
}

func (f *FallbackBuilder) buildFromRecipe(req *Request) Payload {
	recipe := req.Recipe
	cuisine := recipe.Cuisine
	if cuisine == "" {
		cuisine = "home-style"
	}
	focus := recipe.Title
	if len(recipe.Ingredients) > 0 {
		top := recipe.Ingredients
		if len(top) > 3 {
			top = top[:3]
		}
		focus = strings.Join(top, ", ")
	}
	vibe := CanonicalVibe(req.Vibe)
	if vibe == "" {
		vibe = VibeFriends
	}
	vibeWord := strings.ToLower(string(vibe))
	return Payload{
		Starters: []string{
			fmt.Sprintf("Ask which memory this %s classic stirs up while everyone samples the %s.", cuisine, recipe.Title),
			fmt.Sprintf("Invite the table to guess which ingredient—%s—makes %s shine.", focus, recipe.Title),
			fmt.Sprintf("If we hosted a %s dinner around %s every year, what new ritual would we add next time?", vibeWord, recipe.Title),
		},
		Fact: fmt.Sprintf("%s cooks often say balance is everything—%s delivers it in every bite.", cuisine, recipe.Title),
	}
}

func (f *FallbackBuilder) buildFromTheme(theme string) Payload {
	fact := fmt.Sprintf(themeFactTemplates[f.pick(len(themeFactTemplates))], theme)
	return Payload{
		Starters: []string{
			fmt.Sprintf("What keeps you coming back to %s flavors—nostalgia, spice, or something else?", theme),
			fmt.Sprintf("If we built a whole dinner around %s, what story or memory should lead the conversation?", theme),
			fmt.Sprintf("What playful ritual would you add to a %s night to make it unforgettable?", theme),
		},
		Fact: fact,
	}
}

func (f *FallbackBuilder) vibePayload(vibe Vibe) Payload {
	if payload, ok := vibeFallbacks[vibe]; ok {
		return payload
	}
	return vibeFallbacks[VibeFriends]
}

func newFallbackResponse(payload Payload) *Response {
	return &Response{
		Starters: payload.Starters,
		Fact:     payload.Fact,
		Hashes:   hashPayload(payload),
		Fallback: true,
	}
}

// hashPayload 依序為每句 starters 與 fact 計算內容雜湊
func hashPayload(payload Payload) []string {
	hashes := make([]string, 0, len(payload.Starters)+1)
	for _, starter := range payload.Starters {
		hashes = append(hashes, common.HashString(starter))
	}
	hashes = append(hashes, common.HashString(payload.Fact))
	return hashes
}
