package post

import (
	"context"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/usecases/post/texts"
)

func (s *Service) HandleCommand(ctx context.Context, user *domain.User, command string, updateID int64) error {
	switch command {
	case "start":
		return s.HandleStart(ctx, user)
	case "generate":
		return s.HandleGenerate(ctx, user)
	case "help":
		return s.HandleHelp(ctx, user)
	default:
		return s.sendMessage(ctx, user.TelegramChatID, texts.FormatUnknownCommand(command))
	}
}

// HandleStart обрабатывает команду /start.
// Пользователь к этому моменту уже создан через GetOrCreateUser.
func (s *Service) HandleStart(ctx context.Context, user *domain.User) error {
	return s.sendMessage(ctx, user.TelegramChatID, texts.FormatWelcome(user.FirstName))
}

// HandleHelp обрабатывает команду /help
func (s *Service) HandleHelp(ctx context.Context, user *domain.User) error {
	return s.sendMessage(ctx, user.TelegramChatID, texts.FormatHelp(user.FirstName))
}
