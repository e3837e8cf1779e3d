package repository

import (
	"context"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
)

// IUserRepo интерфейс для работы с пользователями Telegram
type IUserRepo interface {
	// Upsert создаёт пользователя по tg_id или обновляет профиль существующего.
	// Идемпотентен: повторный /start не создаёт дублей.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastActivity(ctx context.Context, telegramID int64, at time.Time) error
	// IncrementTokenUsage атомарно прибавляет счётчики токенов пользователя
	IncrementTokenUsage(ctx context.Context, telegramID int64, usage domain.TokenUsage) error
	// ListInactiveSince возвращает пользователей с last_activity_at старше cutoff
	ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*domain.User, error)
}
