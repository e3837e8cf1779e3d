package post

import (
	"context"
	"fmt"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/usecases/post/texts"
)

// SendInactivityReminders отправляет напоминания пользователям, которые давно
// не писали боту. Отправка строго последовательная с паузой между
// пользователями - защита от лимитов Telegram на исходящие сообщения.
func (s *Service) SendInactivityReminders(ctx context.Context) error {
	cutoff := time.Now().Add(-s.Cfg.StalenessThreshold)

	users, err := s.UserRepo.ListInactiveSince(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list inactive users: %w", err)
	}

	if len(users) == 0 {
		s.Log.Debug("no inactive users to remind")
		return nil
	}

	s.Log.Info("sending inactivity reminders",
		"users_count", len(users),
		"cutoff", cutoff,
	)

	for i, user := range users {
		if err := s.sendMessage(ctx, user.TelegramChatID, texts.FormatReminder(user.FirstName)); err != nil {
			// Один недоступный пользователь не останавливает обход;
			// lastActivityAt ему не сдвигаем - напомним на следующем тике
			s.Log.Error("failed to send reminder",
				"error", err,
				"telegram_user_id", user.TelegramUserID,
			)
		} else {
			// Сразу сдвигаем lastActivityAt, чтобы подавить повторное
			// напоминание на следующем тике. Та же колонка используется и для
			// реальной активности пользователя.
			if err := s.UserRepo.UpdateLastActivity(ctx, user.TelegramUserID, time.Now()); err != nil {
				s.Log.Error("failed to refresh last activity after reminder",
					"error", err,
					"telegram_user_id", user.TelegramUserID,
				)
			}
		}

		// Пауза действует и после неудачной отправки: лимиты Telegram на
		// исходящие общие для всего бота
		if i < len(users)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.Cfg.ReminderSendDelay):
			}
		}
	}

	return nil
}
