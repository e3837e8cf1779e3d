package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/post-bot/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/post-bot/internal/adapters/primary/http/controllers/healthcheck"
	openaiAdapter "github.com/admin/tg-bots/post-bot/internal/adapters/secondary/openai"
	"github.com/admin/tg-bots/post-bot/internal/adapters/secondary/storage/pg"
	tgAdapter "github.com/admin/tg-bots/post-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/ports/repository"
	eventRepo "github.com/admin/tg-bots/post-bot/internal/repository/event"
	userRepo "github.com/admin/tg-bots/post-bot/internal/repository/user"
	jobScheduler "github.com/admin/tg-bots/post-bot/internal/services/jobs"
	telegramService "github.com/admin/tg-bots/post-bot/internal/services/telegram"
	postUsecase "github.com/admin/tg-bots/post-bot/internal/usecases/post"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB              *sqlx.DB
	HTTPServer      *http.Server
	TelegramService *telegramService.Service
	TelegramClient  *tgAdapter.Client
	TelegramPoller  *tgAdapter.Poller
	JobScheduler    *jobScheduler.Scheduler
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	repos := a.initRepositories(db)

	telegramClient, err := a.initTelegram(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram: %w", err)
	}

	completionClient := openaiAdapter.NewClient(a.Cfg.OpenAI, a.Log)

	// Bot будет заполнен после создания use case: исходящие сообщения use case
	// шлёт через telegram service, поэтому сервис создаётся первым
	tgService := telegramService.New(nil, telegramClient, a.Log)

	postUseCase := postUsecase.New(
		a.Cfg.Bot,
		repos.User,
		repos.Event,
		tgService,
		completionClient,
		a.Log,
	)
	tgService.SetBotService(postUseCase)

	httpServer := a.initHTTP(db)
	poller := a.initPolling(tgService, telegramClient)
	scheduler := a.initJobScheduler(postUseCase)

	return &Dependencies{
		DB:              db,
		HTTPServer:      httpServer,
		TelegramService: tgService,
		TelegramClient:  telegramClient,
		TelegramPoller:  poller,
		JobScheduler:    scheduler,
	}, nil
}

// repositories содержит инициализированные репозитории
type repositories struct {
	User  repository.IUserRepo
	Event repository.IEventRepo
}

// initRepositories инициализирует репозитории для работы с БД
func (a *App) initRepositories(db *sqlx.DB) *repositories {
	persistenceLayer := pg.NewDB(db)
	return &repositories{
		User:  userRepo.New(persistenceLayer, a.Log),
		Event: eventRepo.New(persistenceLayer, a.Log),
	}
}

// initTelegram инициализирует Telegram клиент и регистрирует команды бота
func (a *App) initTelegram(ctx context.Context) (*tgAdapter.Client, error) {
	if a.Cfg.Telegram == nil || a.Cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	client := tgAdapter.NewClient(a.Cfg.Telegram.BotToken, a.Log)

	if err := client.GetMe(ctx); err != nil {
		return nil, fmt.Errorf("failed to verify bot token: %w", err)
	}

	if err := a.registerBotCommands(ctx, client); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	return client, nil
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(db *sqlx.DB) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initPolling инициализирует long polling
func (a *App) initPolling(
	tgService *telegramService.Service,
	telegramClient *tgAdapter.Client,
) *tgAdapter.Poller {
	handler := func(ctx context.Context, update *domain.Update) error {
		return tgService.HandleUpdate(ctx, update)
	}

	return tgAdapter.NewPoller(telegramClient, a.Cfg.Telegram, handler, a.Log)
}

// initJobScheduler инициализирует планировщик джоб
func (a *App) initJobScheduler(postUseCase *postUsecase.Service) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log)

	inactivityReminder := jobScheduler.NewInactivityReminder(postUseCase, a.Cfg.Bot.ReminderInterval, a.Log)
	scheduler.Register(inactivityReminder)
	a.Log.Info("inactivity reminder job registered",
		"interval", a.Cfg.Bot.ReminderInterval,
		"staleness_threshold", a.Cfg.Bot.StalenessThreshold,
	)

	return scheduler
}

// registerBotCommands регистрирует команды бота в Telegram
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "generate", Description: "Generate social media posts from today's updates"},
		{Command: "help", Description: "Show help"},
	}

	return client.SetMyCommands(ctx, commands)
}
