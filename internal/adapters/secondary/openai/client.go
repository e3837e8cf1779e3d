package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

// Client - клиент для работы с completion API.
// Таймаут на запрос намеренно не задаётся: зависший вызов блокирует
// только запрос одного пользователя.
type Client struct {
	cfg *Config
	api *openai.Client
	Log *slog.Logger
}

// NewClient создаёт новый клиент для completion API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	apiConfig := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		cfg: cfg,
		api: openai.NewClientWithConfig(apiConfig),
		Log: log,
	}
}

// GenerateChatCompletion выполняет синхронный chat completion запрос.
// Отсутствующие в ответе счётчики токенов считаются нулями.
func (c *Client) GenerateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (*domain.Completion, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
	})
	if err != nil {
		c.Log.Error("completion request failed",
			"error", err,
			"model", c.cfg.Model,
		)
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	completion := &domain.Completion{
		Text: text,
		Usage: domain.TokenUsage{
			PromptTokens:     int64(resp.Usage.PromptTokens),
			CompletionTokens: int64(resp.Usage.CompletionTokens),
			TotalTokens:      int64(resp.Usage.TotalTokens),
		},
	}

	c.Log.Debug("completion generated",
		"model", c.cfg.Model,
		"text_length", len(text),
		"prompt_tokens", completion.Usage.PromptTokens,
		"completion_tokens", completion.Usage.CompletionTokens,
		"total_tokens", completion.Usage.TotalTokens,
	)

	return completion, nil
}
