package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

const (
	telegramAPIBaseURL = "https://api.telegram.org/bot"
	apiTimeout         = 30 * time.Second
)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *slog.Logger
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: telegramAPIBaseURL + token,
		token:   token,
		log:     log,
	}
}

// NewClientWithBaseURL создаёт клиент с кастомным базовым URL (для тестов)
func NewClientWithBaseURL(baseURL, token string, log *slog.Logger) *Client {
	c := NewClient(token, log)
	c.baseURL = baseURL + token
	return c
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// MessageResult результат отправки сообщения
type MessageResult struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Date int64 `json:"date"`
}

// MessageResponse ответ от Telegram API на отправку сообщения/стикера
type MessageResponse struct {
	APIResponse
	Result MessageResult `json:"result"`
}

// SendMessage отправляет текстовое сообщение и возвращает message_id
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) (int64, error) {
	req := SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	}

	result, err := c.postForMessage(ctx, "/sendMessage", req)
	if err != nil {
		return 0, err
	}

	c.log.Debug("message sent successfully",
		"chat_id", chatID,
		"message_id", result.MessageID,
	)
	return result.MessageID, nil
}

// SendStickerRequest запрос на отправку стикера
type SendStickerRequest struct {
	ChatID  int64  `json:"chat_id"`
	Sticker string `json:"sticker"` // file_id стикера
}

// SendSticker отправляет стикер по file_id и возвращает message_id
func (c *Client) SendSticker(ctx context.Context, chatID int64, stickerFileID string) (int64, error) {
	req := SendStickerRequest{
		ChatID:  chatID,
		Sticker: stickerFileID,
	}

	result, err := c.postForMessage(ctx, "/sendSticker", req)
	if err != nil {
		return 0, err
	}

	c.log.Debug("sticker sent successfully",
		"chat_id", chatID,
		"message_id", result.MessageID,
	)
	return result.MessageID, nil
}

// DeleteMessageRequest запрос на удаление сообщения
type DeleteMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// DeleteMessage удаляет сообщение по идентификатору
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	req := DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	}

	if _, err := c.post(ctx, "/deleteMessage", req); err != nil {
		return err
	}

	c.log.Debug("message deleted successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return nil
}

// postForMessage выполняет POST запрос и разбирает ответ с message_id
func (c *Client) postForMessage(ctx context.Context, method string, payload interface{}) (*MessageResult, error) {
	body, err := c.post(ctx, method, payload)
	if err != nil {
		return nil, err
	}

	var msgResp MessageResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &msgResp.Result, nil
}

// post выполняет POST запрос к Telegram API и проверяет ok в ответе
func (c *Client) post(ctx context.Context, method string, payload interface{}) ([]byte, error) {
	url := c.baseURL + method

	jsonData, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("failed to marshal request",
			"error", err,
			"method", method,
		)
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		c.log.Error("failed to create request",
			"error", err,
			"method", method,
		)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to send request to telegram",
			"error", err,
			"method", method,
		)
		return nil, fmt.Errorf("failed to send request to telegram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("failed to read response body",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
		)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Error("failed to unmarshal response",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.OK {
		c.log.Error("telegram API returned error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"method", method,
			"status_code", resp.StatusCode,
		)
		return nil, fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}

	return body, nil
}

// GetMe получает информацию о боте
func (c *Client) GetMe(ctx context.Context) error {
	url := c.baseURL + "/getMe"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("getMe failed",
			"status_code", resp.StatusCode,
			"body", string(body),
		)
		return fmt.Errorf("getMe failed with status %d", resp.StatusCode)
	}

	c.log.Info("bot info retrieved successfully")
	return nil
}

// BotCommand представляет команду бота
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands регистрирует команды бота в меню
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	reqBody := struct {
		Commands []BotCommand `json:"commands"`
	}{
		Commands: commands,
	}

	if _, err := c.post(ctx, "/setMyCommands", reqBody); err != nil {
		return err
	}

	c.log.Info("bot commands registered successfully", "commands_count", len(commands))
	return nil
}
