package post

import (
	"context"
	"strings"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/usecases/post/texts"
)

// HandleGenerate обрабатывает команду /generate: собирает события за текущий
// день и синтезирует из них посты для LinkedIn, Twitter (X) и Facebook.
func (s *Service) HandleGenerate(ctx context.Context, user *domain.User) error {
	// Транзиентный UI на время генерации: стикер и сообщение ожидания.
	// Отправка best-effort, неудача не прерывает генерацию.
	stickerID, err := s.TelegramClient.SendSticker(ctx, user.TelegramChatID, s.Cfg.StickerFileID)
	if err != nil {
		s.Log.Warn("failed to send waiting sticker",
			"error", err,
			"chat_id", user.TelegramChatID,
		)
	}
	waitingID, err := s.TelegramClient.SendMessage(ctx, user.TelegramChatID, texts.GeneratingWait)
	if err != nil {
		s.Log.Warn("failed to send waiting message",
			"error", err,
			"chat_id", user.TelegramChatID,
		)
	}

	from, to := dayWindow(time.Now())
	eventTexts, err := s.EventRepo.ListTextsForWindow(ctx, user.TelegramUserID, from, to)
	if err != nil {
		return s.failGenerate(ctx, user, stickerID, waitingID, err)
	}

	// Пустой день - генерацию не запускаем, completion API не трогаем
	if len(eventTexts) == 0 {
		s.deleteTransientMessages(ctx, user.TelegramChatID, stickerID, waitingID)
		return s.sendMessage(ctx, user.TelegramChatID, texts.NoEventsToday)
	}

	joined := strings.Join(eventTexts, ", ")
	completion, err := s.CompletionClient.GenerateChatCompletion(ctx,
		texts.GenerationSystemPrompt,
		texts.FormatGenerationUserPrompt(joined),
	)
	if err != nil {
		return s.failGenerate(ctx, user, stickerID, waitingID, err)
	}

	// Счётчики токенов обновляются в фоне, пользователя не блокируем
	usage := completion.Usage
	telegramUserID := user.TelegramUserID
	go func() {
		if err := s.UserRepo.IncrementTokenUsage(context.Background(), telegramUserID, usage); err != nil {
			s.Log.Warn("failed to update token usage",
				"error", err,
				"telegram_user_id", telegramUserID,
			)
		}
	}()

	s.deleteTransientMessages(ctx, user.TelegramChatID, stickerID, waitingID)

	replyText := completion.Text
	if replyText == "" {
		replyText = texts.NoContentGenerated
	}

	return s.sendMessage(ctx, user.TelegramChatID, replyText)
}

// failGenerate убирает транзиентный UI, логирует ошибку и отвечает пользователю
func (s *Service) failGenerate(ctx context.Context, user *domain.User, stickerID, waitingID int64, err error) error {
	s.deleteTransientMessages(ctx, user.TelegramChatID, stickerID, waitingID)

	s.Log.Error("failed to generate post",
		"error", err,
		"telegram_user_id", user.TelegramUserID,
	)

	return s.sendMessage(ctx, user.TelegramChatID, texts.ErrorGeneratePost)
}

// deleteTransientMessages удаляет сообщения транзиентного UI, нулевые ID пропускаются
func (s *Service) deleteTransientMessages(ctx context.Context, chatID int64, messageIDs ...int64) {
	for _, messageID := range messageIDs {
		if messageID == 0 {
			continue
		}
		if err := s.TelegramClient.DeleteMessage(ctx, chatID, messageID); err != nil {
			s.Log.Warn("failed to delete transient message",
				"error", err,
				"chat_id", chatID,
				"message_id", messageID,
			)
		}
	}
}

// dayWindow возвращает границы текущего дня по локальному времени сервера:
// [00:00:00.000, 23:59:59.999]
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999000000, now.Location())
	return start, end
}
