package topics

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"table-talk/internal/core/ai/cache"
	"table-talk/internal/pkg/common"
)

const (
	starterCount = 3
	previewCount = 2
)

// Generator 外部生成能力；單次呼叫只嘗試一個模型
type Generator interface {
	Enabled() bool
	Models() []string
	Complete(ctx context.Context, model, system, user string) (string, error)
}

// Service 話題生成協調器：快取查詢 → 依序嘗試模型 → 本地備援。
// 除了輸入驗證錯誤之外不對呼叫端回傳任何錯誤。
type Service struct {
	generator Generator
	store     cache.Store
	fallback  *FallbackBuilder
	maxWords  int
}

// NewService 建立話題服務；store 可為 nil（停用快取）
func NewService(generator Generator, store cache.Store, fallback *FallbackBuilder, maxWords int) *Service {
	return &Service{
		generator: generator,
		store:     store,
		fallback:  fallback,
		maxWords:  maxWords,
	}
}

// Generate 執行完整的生成流程。回傳的錯誤只會是 ValidationError。
func (s *Service) Generate(ctx context.Context, req *Request) (*Response, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	key := s.cacheKey(req)

	// 帶有 previousHashes 的請求明確要求新內容，跳過快取讀取
	if s.store != nil && len(req.PreviousHashes) == 0 {
		if raw, ok := s.store.Get(ctx, key); ok {
			var payload Payload
			if err := common.ParseJSON(raw, &payload); err == nil && validPayload(payload) {
				resp := responseFromPayload(payload)
				resp.CacheHit = true
				common.LogInfo("話題快取命中", zap.String("key", key))
				return s.shape(resp, req), nil
			}
		}
	}

	if resp := s.attemptModels(ctx, req); resp != nil {
		s.writeCache(ctx, key, resp)
		return s.shape(resp, req), nil
	}

	// 所有模型嘗試都失敗：使用確定性的本地備援，且不寫入快取
	return s.shape(s.fallback.Build(req), req), nil
}

// attemptModels 依固定優先順序逐一嘗試模型。
// 可重試錯誤（429、額度不足、5xx、連線錯誤、結構驗證失敗）換下一個模型；
// 不可重試錯誤立即放棄並交給備援。
func (s *Service) attemptModels(ctx context.Context, req *Request) *Response {
	if s.generator == nil || !s.generator.Enabled() {
		common.LogWarn("生成服務未配置，使用本地備援話題")
		return nil
	}

	system := systemPrompt
	user := BuildUserPrompt(req)

	for _, model := range s.generator.Models() {
		content, err := s.generator.Complete(ctx, model, system, user)
		if err != nil {
			if common.IsTransientUpstream(err) {
				common.LogWarn("模型呼叫暫時性失敗，嘗試下一個模型",
					zap.String("model", model),
					zap.Error(err))
				continue
			}
			common.LogError("模型呼叫永久性失敗，放棄嘗試",
				zap.String("model", model),
				zap.Error(err))
			return nil
		}

		payload, ok := s.parsePayload(content)
		if !ok {
			// 回傳內容形狀不符視為可重試
			common.LogWarn("生成內容結構驗證失敗，嘗試下一個模型",
				zap.String("model", model),
				zap.String("content", common.TruncateForLog(content, 200)))
			continue
		}
		return responseFromPayload(payload)
	}
	return nil
}

// parsePayload 解析並清理模型回覆；要求恰好 3 條開場白且每句非空
func (s *Service) parsePayload(content string) (Payload, bool) {
	var payload Payload
	if err := common.ParseJSON(common.ExtractJSONObject(content), &payload); err != nil {
		return Payload{}, false
	}
	if !validPayload(payload) {
		return Payload{}, false
	}

	for i, starter := range payload.Starters {
		payload.Starters[i] = SanitizeSentence(starter, s.maxWords)
	}
	payload.Fact = SanitizeSentence(payload.Fact, s.maxWords)

	for _, starter := range payload.Starters {
		if starter == "" {
			return Payload{}, false
		}
	}
	if payload.Fact == "" {
		return Payload{}, false
	}
	return payload, true
}

func (s *Service) cacheKey(req *Request) string {
	theme := req.Theme
	if IsKnownVibe(req.Vibe) {
		theme = string(CanonicalVibe(req.Vibe))
	}
	if req.Recipe != nil && req.Recipe.Title != "" {
		theme = theme + "|" + strings.ToLower(req.Recipe.Title)
	}
	return cache.Key(theme, req.People, req.DietaryOrIngredient)
}

func (s *Service) writeCache(ctx context.Context, key string, resp *Response) {
	if s.store == nil {
		return
	}
	raw, err := common.ToJSON(Payload{Starters: resp.Starters, Fact: resp.Fact})
	if err != nil {
		return
	}
	s.store.Set(ctx, key, raw)
}

// shape 套用 preview 模式：只回傳前 2 條開場白與對應雜湊
func (s *Service) shape(resp *Response, req *Request) *Response {
	if !req.Preview || len(resp.Starters) <= previewCount {
		return resp
	}
	shaped := *resp
	shaped.Starters = resp.Starters[:previewCount]
	if len(resp.Hashes) > previewCount {
		hashes := make([]string, 0, previewCount+1)
		hashes = append(hashes, resp.Hashes[:previewCount]...)
		// 趣聞的雜湊固定在最後一筆
		hashes = append(hashes, resp.Hashes[len(resp.Hashes)-1])
		shaped.Hashes = hashes
	}
	return &shaped
}

func validPayload(payload Payload) bool {
	if len(payload.Starters) != starterCount {
		return false
	}
	for _, starter := range payload.Starters {
		if strings.TrimSpace(starter) == "" {
			return false
		}
	}
	return strings.TrimSpace(payload.Fact) != ""
}

func responseFromPayload(payload Payload) *Response {
	return &Response{
		Starters: payload.Starters,
		Fact:     payload.Fact,
		Hashes:   hashPayload(payload),
	}
}
