package repository

import (
	"context"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
)

// IEventRepo интерфейс для работы с событиями пользователей.
// События append-only: update/delete путей нет.
type IEventRepo interface {
	Create(ctx context.Context, event *domain.Event) error
	// ListTextsForWindow возвращает тексты событий пользователя с created_at
	// в интервале [from, to] включительно, в порядке создания
	ListTextsForWindow(ctx context.Context, telegramID int64, from, to time.Time) ([]string, error)
}
