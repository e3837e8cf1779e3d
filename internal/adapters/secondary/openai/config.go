package openai

type Config struct {
	ApiKey string `envconfig:"API_KEY" required:"true"`
	// BaseURL позволяет ходить в OpenAI-совместимые шлюзы (openrouter и т.п.)
	BaseURL string `envconfig:"BASE_URL" default:"https://openrouter.ai/api/v1"`
	Model   string `envconfig:"MODEL" required:"true"`
}
