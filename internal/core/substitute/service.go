package substitute

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"table-talk/internal/pkg/common"
)

// Generator 外部生成能力；與話題服務共用同一個客戶端實作
type Generator interface {
	Enabled() bool
	Models() []string
	Complete(ctx context.Context, model, system, user string) (string, error)
}

const explainSystemPrompt = "You write one-sentence cooking instruction adjustments " +
	"when an ingredient is swapped. Output plain text only, no JSON, no markdown."

// Service 食材替換說明服務。Explain 永不失敗：
// 生成不可用或出錯時退回固定句型。
type Service struct {
	generator Generator
}

// NewService 建立替換說明服務
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Explain 產生一句話的烹調調整說明
func (s *Service) Explain(ctx context.Context, req *ExplainRequest) *ExplainResponse {
	if s.generator == nil || !s.generator.Enabled() {
		return &ExplainResponse{Delta: fallbackDelta(req.From, req.To)}
	}

	user := fmt.Sprintf(
		"Recipe: %s (%s)\nOriginal ingredient: %s\nReplacement: %s\nSteps: %s\n"+
			"In one concise sentence, say how cooking changes (time, order, prep). Output plain text only.",
		req.Recipe.Title, req.Recipe.Cuisine, req.From, req.To,
		strings.Join(req.Recipe.Steps, " | "))

	for _, model := range s.generator.Models() {
		content, err := s.generator.Complete(ctx, model, explainSystemPrompt, user)
		if err != nil {
			if common.IsTransientUpstream(err) {
				common.LogWarn("替換說明生成暫時性失敗，嘗試下一個模型",
					zap.String("model", model),
					zap.Error(err))
				continue
			}
			common.LogError("替換說明生成永久性失敗，使用固定句型",
				zap.String("model", model),
				zap.Error(err))
			break
		}

		delta := strings.TrimSpace(content)
		if delta != "" {
			return &ExplainResponse{Delta: delta}
		}
	}

	return &ExplainResponse{Delta: fallbackDelta(req.From, req.To)}
}

func fallbackDelta(from, to string) string {
	return fmt.Sprintf("Swap %s for %s and adjust seasoning to taste.", from, to)
}
