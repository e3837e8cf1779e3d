package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID `json:"id" db:"id"`
	TelegramUserID   int64     `json:"telegram_user_id" db:"tg_id"`
	TelegramChatID   int64     `json:"telegram_chat_id" db:"chat_id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	LastName         *string   `json:"last_name,omitempty" db:"last_name"`
	Username         *string   `json:"username,omitempty" db:"username"`
	IsBot            bool      `json:"is_bot" db:"is_bot"`
	PromptTokens     int64     `json:"prompt_tokens" db:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens" db:"completion_tokens"`
	TotalTokens      int64     `json:"total_tokens" db:"total_tokens"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
	// LastActivityAt обновляется на каждое входящее сообщение И после отправки
	// напоминания - одна колонка на оба случая (см. reminders)
	LastActivityAt time.Time `json:"last_activity_at" db:"last_activity_at"`
}
