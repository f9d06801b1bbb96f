package services

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// telegramSender: подмножество *tgbotapi.BotAPI, удобно мокать в тестах.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    telegramSender
	chatID int64
	dryRun bool
	log    *logrus.Logger
}

// NewTelegramNotifier подключается к Bot API; в dry-run сеть не трогаем.
func NewTelegramNotifier(token string, chatID int64, dryRun bool, log *logrus.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{chatID: chatID, dryRun: dryRun, log: log}
	if dryRun {
		return n, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	n.bot = bot
	return n, nil
}

func (t *TelegramNotifier) Notify(_ context.Context, ev DealEvent) error {
	if t.chatID == 0 {
		t.log.Debug("[tg][skip] chat_id is not configured")
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, eventText(ev))
	msg.DisableWebPagePreview = true

	if t.dryRun || t.bot == nil {
		t.log.WithFields(logrus.Fields{"chat_id": t.chatID, "text": msg.Text}).Info("[tg][dry-run] deal notification")
		return nil
	}
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}
