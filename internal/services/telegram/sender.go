package telegram

import (
	"context"
	"fmt"
)

// SendMessage отправляет текстовое сообщение пользователю
func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) (int64, error) {
	messageID, err := s.Client.SendMessage(ctx, chatID, text)
	if err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	s.Log.Debug("message sent successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return messageID, nil
}

// SendSticker отправляет стикер пользователю
func (s *Service) SendSticker(ctx context.Context, chatID int64, stickerFileID string) (int64, error) {
	messageID, err := s.Client.SendSticker(ctx, chatID, stickerFileID)
	if err != nil {
		s.Log.Error("failed to send sticker",
			"error", err,
			"chat_id", chatID,
		)
		return 0, fmt.Errorf("failed to send sticker: %w", err)
	}

	s.Log.Debug("sticker sent successfully",
		"chat_id", chatID,
		"message_id", messageID,
	)
	return messageID, nil
}

// DeleteMessage удаляет сообщение из чата
func (s *Service) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	if err := s.Client.DeleteMessage(ctx, chatID, messageID); err != nil {
		s.Log.Error("failed to delete message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
