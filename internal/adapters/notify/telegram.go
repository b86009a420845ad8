package notify

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers notifications to a Telegram chat. This is the
// real messaging channel the file log simulates.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSender creates a sender for the given bot token and chat.
// PRE: token is a valid bot token; chatID identifies a chat the bot can post to
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramSender{api: api, chatID: chatID}, nil
}

// Send posts the message to the configured chat.
// POST: Message is delivered or an error is returned; the caller treats
// delivery as best effort
func (s *TelegramSender) Send(_ context.Context, message string) error {
	if _, err := s.api.Send(tgbotapi.NewMessage(s.chatID, message)); err != nil {
		slog.Error("telegram_send_failed", "chat_id", s.chatID, "error", err)
		return fmt.Errorf("telegram send: %w", err)
	}
	slog.Info("telegram_sent", "chat_id", s.chatID)
	return nil
}
