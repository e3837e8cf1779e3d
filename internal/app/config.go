package app

import (
	server "github.com/admin/tg-bots/post-bot/internal/adapters/primary/http"
	openaiAdapter "github.com/admin/tg-bots/post-bot/internal/adapters/secondary/openai"
	"github.com/admin/tg-bots/post-bot/internal/adapters/secondary/storage/pg"
	"github.com/admin/tg-bots/post-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/post-bot/internal/pkg/logger"
	postUsecase "github.com/admin/tg-bots/post-bot/internal/usecases/post"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config            `envconfig:"POSTGRES"`
	Log      *logger.Config        `envconfig:"LOG"`
	Server   *server.Config        `envconfig:"APISERVER"`
	Telegram *telegram.Config      `envconfig:"TELEGRAM"`
	OpenAI   *openaiAdapter.Config `envconfig:"OPENAI"`
	Bot      *postUsecase.Config   `envconfig:"BOT"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
