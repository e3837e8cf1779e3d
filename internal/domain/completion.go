package domain

// TokenUsage счётчики токенов одного запроса к completion API.
// Любое из полей может отсутствовать в ответе - тогда считаем 0.
type TokenUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Completion результат генерации текста
type Completion struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}
