package post

import "time"

type Config struct {
	// ReminderInterval период запуска джобы напоминаний
	ReminderInterval time.Duration `envconfig:"REMINDER_INTERVAL" default:"10m"`
	// StalenessThreshold порог неактивности, после которого пользователь получает напоминание
	StalenessThreshold time.Duration `envconfig:"STALENESS_THRESHOLD" default:"24h"`
	// ReminderSendDelay пауза между отправками напоминаний (защита от лимитов Telegram)
	ReminderSendDelay time.Duration `envconfig:"REMINDER_SEND_DELAY" default:"1s"`
	// StickerFileID file_id стикера-заглушки, отправляемого на время генерации
	StickerFileID string `envconfig:"STICKER_FILE_ID" default:"CAACAgQAAxkBAAOQaFMJ4JIaFdz0K20PIvDYCtiz5BoAApwRAAJGpOFRkTuS3L4QYSc2BA"`
}
