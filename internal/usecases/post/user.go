package post

import (
	"context"
	"fmt"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/google/uuid"
)

// GetOrCreateUser создаёт пользователя по Telegram ID или обновляет профиль существующего.
// Идемпотентна: повторный вызов для того же tg_id не создаёт дубликата и не
// сбрасывает накопленные счётчики токенов.
func (s *Service) GetOrCreateUser(ctx context.Context, tgUser *domain.TelegramUser, chat *domain.Chat) (*domain.User, error) {
	now := time.Now()
	user := &domain.User{
		ID:             uuid.New(),
		TelegramUserID: tgUser.ID,
		TelegramChatID: chat.ID,
		FirstName:      tgUser.FirstName,
		LastName:       tgUser.LastName,
		Username:       tgUser.Username,
		IsBot:          tgUser.IsBot,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}

	stored, err := s.UserRepo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	// Любое входящее сообщение считается активностью
	if err := s.UserRepo.UpdateLastActivity(ctx, stored.TelegramUserID, now); err != nil {
		s.Log.Warn("failed to update last activity",
			"error", err,
			"telegram_user_id", stored.TelegramUserID,
		)
	} else {
		stored.LastActivityAt = now
	}

	return stored, nil
}
