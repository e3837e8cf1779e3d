package userRepo

import (
	"context"
	"fmt"
	"time"

	ports "github.com/admin/tg-bots/post-bot/internal/ports/repository"

	"log/slog"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/ports/persistence"
)

type userColumns struct {
	TableName        string
	ID               string
	TelegramUserID   string
	TelegramChatID   string
	FirstName        string
	LastName         string
	Username         string
	IsBot            string
	PromptTokens     string
	CompletionTokens string
	TotalTokens      string
	CreatedAt        string
	UpdatedAt        string
	LastActivityAt   string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns userColumns
}

// New создаёт новый репозиторий для работы с пользователями
func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName:        "tg_users",
		ID:               "id",
		TelegramUserID:   "tg_id",
		TelegramChatID:   "chat_id",
		FirstName:        "first_name",
		LastName:         "last_name",
		Username:         "username",
		IsBot:            "is_bot",
		PromptTokens:     "prompt_tokens",
		CompletionTokens: "completion_tokens",
		TotalTokens:      "total_tokens",
		CreatedAt:        "created_at",
		UpdatedAt:        "updated_at",
		LastActivityAt:   "last_activity_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками таблицы tg_users
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.TelegramUserID,
		r.columns.TelegramChatID,
		r.columns.FirstName,
		r.columns.LastName,
		r.columns.Username,
		r.columns.IsBot,
		r.columns.PromptTokens,
		r.columns.CompletionTokens,
		r.columns.TotalTokens,
		r.columns.CreatedAt,
		r.columns.UpdatedAt,
		r.columns.LastActivityAt)
}

// Upsert создаёт пользователя по tg_id или обновляет профиль существующего.
// Счётчики токенов и created_at при конфликте не трогаются.
func (r *Repository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, $8, $9, $10)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
		RETURNING %s`,
		r.columns.TableName,
		r.allColumns(),
		r.columns.TelegramUserID,
		r.columns.TelegramChatID, r.columns.TelegramChatID,
		r.columns.FirstName, r.columns.FirstName,
		r.columns.LastName, r.columns.LastName,
		r.columns.Username, r.columns.Username,
		r.columns.UpdatedAt, r.columns.UpdatedAt,
		r.allColumns())

	var stored domain.User
	err := r.db.Get(ctx, &stored, query,
		user.ID,
		user.TelegramUserID,
		user.TelegramChatID,
		user.FirstName,
		user.LastName,
		user.Username,
		user.IsBot,
		user.CreatedAt,
		user.UpdatedAt,
		user.LastActivityAt)
	if err != nil {
		r.Log.Error("failed to upsert user",
			"error", err,
			"telegram_user_id", user.TelegramUserID)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	r.Log.Debug("user upserted successfully",
		"id", stored.ID,
		"telegram_user_id", stored.TelegramUserID)
	return &stored, nil
}

// UpdateLastActivity выставляет время последней активности пользователя
func (r *Repository) UpdateLastActivity(ctx context.Context, telegramID int64, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		r.columns.TableName,
		r.columns.LastActivityAt,
		r.columns.UpdatedAt,
		r.columns.TelegramUserID)
	rowsAffected, err := r.db.ExecWithResult(ctx, query, at, at, telegramID)
	if err != nil {
		r.Log.Error("failed to update last activity",
			"error", err,
			"telegram_user_id", telegramID)
		return fmt.Errorf("failed to update last activity: %w", err)
	}
	if rowsAffected == 0 {
		r.Log.Warn("user not found for update last activity", "telegram_user_id", telegramID)
		return fmt.Errorf("user not found")
	}
	r.Log.Debug("last activity updated successfully", "telegram_user_id", telegramID)
	return nil
}

// IncrementTokenUsage атомарно прибавляет счётчики токенов пользователя.
// Инкремент выполняется в SQL, поэтому конкурентные генерации не теряют счётчики.
func (r *Repository) IncrementTokenUsage(ctx context.Context, telegramID int64, usage domain.TokenUsage) error {
	query := fmt.Sprintf(`UPDATE %s SET
		%s = %s + $1,
		%s = %s + $2,
		%s = %s + $3,
		%s = $4
		WHERE %s = $5`,
		r.columns.TableName,
		r.columns.PromptTokens, r.columns.PromptTokens,
		r.columns.CompletionTokens, r.columns.CompletionTokens,
		r.columns.TotalTokens, r.columns.TotalTokens,
		r.columns.UpdatedAt,
		r.columns.TelegramUserID)
	rowsAffected, err := r.db.ExecWithResult(ctx, query,
		usage.PromptTokens,
		usage.CompletionTokens,
		usage.TotalTokens,
		time.Now(),
		telegramID)
	if err != nil {
		r.Log.Error("failed to increment token usage",
			"error", err,
			"telegram_user_id", telegramID)
		return fmt.Errorf("failed to increment token usage: %w", err)
	}
	if rowsAffected == 0 {
		r.Log.Warn("user not found for token usage increment", "telegram_user_id", telegramID)
		return fmt.Errorf("user not found")
	}
	r.Log.Debug("token usage incremented",
		"telegram_user_id", telegramID,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens)
	return nil
}

// ListInactiveSince возвращает пользователей с last_activity_at старше cutoff
func (r *Repository) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*domain.User, error) {
	var users []*domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s < $1 ORDER BY %s ASC`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.LastActivityAt,
		r.columns.LastActivityAt)
	err := r.db.Select(ctx, &users, query, cutoff)
	if err != nil {
		r.Log.Error("failed to list inactive users",
			"error", err,
			"cutoff", cutoff)
		return nil, fmt.Errorf("failed to list inactive users: %w", err)
	}
	r.Log.Debug("inactive users listed", "count", len(users), "cutoff", cutoff)
	return users, nil
}
