package telegram

import (
	"context"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	// SendMessage отправляет текст и возвращает message_id отправленного сообщения
	SendMessage(ctx context.Context, chatID int64, text string) (int64, error)
	// SendSticker отправляет стикер по file_id и возвращает message_id
	SendSticker(ctx context.Context, chatID int64, stickerFileID string) (int64, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int64) error
}
