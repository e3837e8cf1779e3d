package post

import (
	"context"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/usecases/post/texts"
	"github.com/google/uuid"
)

// HandleText обрабатывает текстовые сообщения - каждое сохраняется как событие дня.
// Текст сохраняется как есть, без нормализации.
func (s *Service) HandleText(ctx context.Context, user *domain.User, text string, updateID int64) error {
	event := &domain.Event{
		ID:             uuid.New(),
		TelegramUserID: user.TelegramUserID,
		Text:           text,
		CreatedAt:      time.Now(),
	}

	if err := s.EventRepo.Create(ctx, event); err != nil {
		s.Log.Error("failed to create event",
			"error", err,
			"telegram_user_id", user.TelegramUserID,
			"update_id", updateID,
		)
		return s.sendMessage(ctx, user.TelegramChatID, texts.ErrorProcessMessage)
	}

	s.Log.Debug("event created",
		"event_id", event.ID,
		"telegram_user_id", user.TelegramUserID,
	)

	return s.sendMessage(ctx, user.TelegramChatID, texts.EventSaved)
}
