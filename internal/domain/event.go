package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event - одно текстовое обновление пользователя за день.
// Append-only: события не изменяются и не удаляются.
type Event struct {
	ID             uuid.UUID `json:"id" db:"id"`
	TelegramUserID int64     `json:"telegram_user_id" db:"tg_user_id"`
	Text           string    `json:"text" db:"text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
