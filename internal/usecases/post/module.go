package post

import (
	"log/slog"

	"github.com/admin/tg-bots/post-bot/internal/ports/repository"
	"github.com/admin/tg-bots/post-bot/internal/ports/service"
	"github.com/admin/tg-bots/post-bot/internal/ports/telegram"
)

// Service бизнес-логика бота генерации постов
type Service struct {
	Cfg              *Config
	UserRepo         repository.IUserRepo
	EventRepo        repository.IEventRepo
	TelegramClient   telegram.IClient
	CompletionClient service.ICompletionService
	Log              *slog.Logger
}

// New создаёт новый сервис для бизнес-логики бота генерации постов
func New(
	cfg *Config,
	userRepo repository.IUserRepo,
	eventRepo repository.IEventRepo,
	telegramClient telegram.IClient,
	completionClient service.ICompletionService,
	log *slog.Logger,
) *Service {
	return &Service{
		Cfg:              cfg,
		UserRepo:         userRepo,
		EventRepo:        eventRepo,
		TelegramClient:   telegramClient,
		CompletionClient: completionClient,
		Log:              log,
	}
}
