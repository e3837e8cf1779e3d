package eventRepo

import (
	"context"
	"fmt"
	"time"

	ports "github.com/admin/tg-bots/post-bot/internal/ports/repository"

	"log/slog"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/ports/persistence"
)

type eventColumns struct {
	TableName      string
	ID             string
	TelegramUserID string
	Text           string
	CreatedAt      string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns eventColumns
}

// New создаёт новый репозиторий для работы с событиями
func New(db persistence.Persistence, log *slog.Logger) ports.IEventRepo {
	cols := eventColumns{
		TableName:      "events",
		ID:             "id",
		TelegramUserID: "tg_user_id",
		Text:           "text",
		CreatedAt:      "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s",
		r.columns.ID,
		r.columns.TelegramUserID,
		r.columns.Text,
		r.columns.CreatedAt)
}

// Create создаёт новое событие. Событие неизменяемо - update/delete путей нет.
func (r *Repository) Create(ctx context.Context, event *domain.Event) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		event.ID,
		event.TelegramUserID,
		event.Text,
		event.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create event",
			"error", err,
			"telegram_user_id", event.TelegramUserID,
			"event_id", event.ID)
		return fmt.Errorf("failed to create event: %w", err)
	}
	r.Log.Debug("event created successfully",
		"id", event.ID,
		"telegram_user_id", event.TelegramUserID)
	return nil
}

// ListTextsForWindow возвращает тексты событий пользователя с created_at
// в интервале [from, to] включительно, в порядке создания
func (r *Repository) ListTextsForWindow(ctx context.Context, telegramID int64, from, to time.Time) ([]string, error) {
	var texts []string
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s >= $2 AND %s <= $3 ORDER BY %s ASC`,
		r.columns.Text,
		r.columns.TableName,
		r.columns.TelegramUserID,
		r.columns.CreatedAt,
		r.columns.CreatedAt,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &texts, query, telegramID, from, to)
	if err != nil {
		r.Log.Error("failed to list event texts",
			"error", err,
			"telegram_user_id", telegramID,
			"from", from,
			"to", to)
		return nil, fmt.Errorf("failed to list event texts: %w", err)
	}
	r.Log.Debug("event texts listed",
		"telegram_user_id", telegramID,
		"count", len(texts))
	return texts, nil
}
