package service

import (
	"context"

	"github.com/admin/tg-bots/post-bot/internal/domain"
)

// ICompletionService интерфейс для генерации текста через completion API
type ICompletionService interface {
	GenerateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (*domain.Completion, error)
}
