package domain

// дока - https://core.telegram.org/bots/api

// Update - входящее обновление от Telegram Bot API
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
	// Другие типы обновлений (edited_message, callback_query и т.д.)
	// боту не нужны и игнорируются на уровне поллера.
}

// Message - сообщение от Telegram Bot API
type Message struct {
	MessageID int64         `json:"message_id"`
	From      *TelegramUser `json:"from,omitempty"`     // отправитель (Telegram User)
	Chat      *Chat         `json:"chat"`               // чат
	Date      int64         `json:"date"`               // Unix timestamp
	Text      *string       `json:"text,omitempty"`     // текст сообщения
	Entities  []Entity      `json:"entities,omitempty"` // сущности (команды, упоминания и т.д.)
}

// TelegramUser - пользователь Telegram (не domain.User)
type TelegramUser struct {
	ID           int64   `json:"id"`
	IsBot        bool    `json:"is_bot"`
	FirstName    string  `json:"first_name"`
	LastName     *string `json:"last_name,omitempty"`
	Username     *string `json:"username,omitempty"`
	LanguageCode *string `json:"language_code,omitempty"`
}

// Chat - чат в Telegram
type Chat struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"` // "private", "group", "supergroup", "channel"
	Title     *string `json:"title,omitempty"`
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Entity - сущность в сообщении (команда, упоминание и т.д.)
type Entity struct {
	Type   string `json:"type"`   // "bot_command", "mention", "url" и т.д.
	Offset int    `json:"offset"` // смещение в UTF-16 кодовых единицах
	Length int    `json:"length"` // длина в UTF-16 кодовых единицах
}
