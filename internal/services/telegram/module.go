package telegram

import (
	"log/slog"

	"github.com/admin/tg-bots/post-bot/internal/ports/service"
	"github.com/admin/tg-bots/post-bot/internal/ports/telegram"
)

// Service реализует telegram.IClient: use case отправляет сообщения через
// сервис, а не через адаптер напрямую
var _ telegram.IClient = (*Service)(nil)

type Service struct {
	Bot    service.IBotService
	Client telegram.IClient
	Log    *slog.Logger
}

func New(
	bot service.IBotService,
	client telegram.IClient,
	log *slog.Logger,
) *Service {
	return &Service{
		Bot:    bot,
		Client: client,
		Log:    log,
	}
}

// SetBotService устанавливает botService (для случаев когда нужно обновить после создания)
func (s *Service) SetBotService(bot service.IBotService) {
	s.Bot = bot
}
