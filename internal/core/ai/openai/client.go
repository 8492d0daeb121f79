package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"table-talk/internal/infrastructure/config"
	"table-talk/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client OpenAI 風格 chat completions API 的客戶端。
// 單次呼叫只打一個模型；模型優先序與重試由上層的生成協調器控制。
type Client struct {
	client         *resty.Client
	apiKey         string
	models         []string
	maxTokens      int
	attemptTimeout time.Duration
}

// NewClient 創建生成服務客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.OpenAI.BaseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenAI.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client:         client,
		apiKey:         cfg.OpenAI.APIKey,
		models:         cfg.OpenAI.Models,
		maxTokens:      cfg.OpenAI.MaxTokens,
		attemptTimeout: cfg.OpenAI.AttemptTimeout,
	}
}

// Enabled 是否設定了 API Key；未設定時上層直接走本地退路
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Models 回傳固定的模型優先序
func (c *Client) Models() []string {
	return c.models
}

// chatRequest 請求結構
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse 響應結構
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// Complete 對單一模型發出一次生成請求。
// 失敗時回傳 *common.UpstreamError，Transient 標記是否值得換下一個模型再試。
func (c *Client) Complete(ctx context.Context, model, system, user string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	req := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens: c.maxTokens,
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(attemptCtx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		// 連線層錯誤（含逾時）一律視為暫時性
		common.LogGenerationCall(model, time.Since(start), err, "")
		return "", &common.UpstreamError{Provider: "openai", Transient: true, Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		upErr := &common.UpstreamError{
			Provider:  "openai",
			Status:    resp.StatusCode(),
			Transient: isTransientStatus(resp.StatusCode(), resp.String()),
			Err:       fmt.Errorf("generation failed with status %d", resp.StatusCode()),
		}
		common.LogGenerationCall(model, time.Since(start), upErr, "")
		return "", upErr
	}

	var result chatResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", &common.UpstreamError{Provider: "openai", Transient: true, Err: err}
	}
	if result.Error != nil {
		return "", &common.UpstreamError{
			Provider:  "openai",
			Transient: isTransientAPIError(result.Error.Type, result.Error.Message),
			Err:       fmt.Errorf("generation API error: %s", result.Error.Message),
		}
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		// 空回覆視為暫時性，讓上層換模型再試
		return "", &common.UpstreamError{
			Provider:  "openai",
			Transient: true,
			Err:       fmt.Errorf("empty content in generation response"),
		}
	}

	content := result.Choices[0].Message.Content
	common.LogInfo("Generation attempt succeeded",
		zap.String("model", model),
		zap.Int("content_length", len(content)),
		zap.Duration("耗時", time.Since(start)),
	)
	return content, nil
}

// isTransientStatus 429、配額不足與 5xx 視為暫時性，可換模型重試
func isTransientStatus(status int, body string) bool {
	if status == http.StatusTooManyRequests || status >= 500 {
		return true
	}
	lower := strings.ToLower(body)
	return strings.Contains(lower, "insufficient_quota") || strings.Contains(lower, "rate_limit")
}

// isTransientAPIError 依 API 錯誤型別分類
func isTransientAPIError(errType, message string) bool {
	lower := strings.ToLower(errType + " " + message)
	return strings.Contains(lower, "rate_limit") ||
		strings.Contains(lower, "insufficient_quota") ||
		strings.Contains(lower, "overloaded") ||
		strings.Contains(lower, "server_error")
}
