package services

import (
	"bytes"
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"sponsortrack/internal/logger"
	"sponsortrack/internal/models"
)

func sampleEvent() DealEvent {
	return DealEvent{
		Kind: DealStatusChanged,
		Deal: models.Deal{ID: 7, AccountID: 3, StartDate: "2024-01-01", EndDate: "2025-01-01",
			Value: decimal.NewFromInt(25000), Status: models.DealStatusActive},
		Account:        &models.Account{ID: 3, Name: "Nike", ContactEmail: "contact@nike.com"},
		PreviousStatus: models.DealStatusDraft,
	}
}

func TestEventText(t *testing.T) {
	text := eventText(sampleEvent())
	assert.Contains(t, text, "Deal #7 is now active")
	assert.Contains(t, text, "Account: Nike")
	assert.Contains(t, text, "$25000.00")
	assert.Contains(t, text, "(was draft)")

	ev := sampleEvent()
	ev.Kind = DealCreated
	ev.Account = nil
	assert.Contains(t, eventText(ev), "New deal #7 for #3")
}

func TestMultiNotifier(t *testing.T) {
	a, b := &recordingNotifier{err: errBoom}, &recordingNotifier{}
	err := MultiNotifier{a, b}.Notify(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, errBoom)
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)

	assert.NoError(t, MultiNotifier{}.Notify(context.Background(), sampleEvent()))
}

func TestEmailNotifier(t *testing.T) {
	buf := &bytes.Buffer{}
	n := NewEmailNotifier("localhost", 25, "", "", "deals@sponsortrack.local", false, logger.New(buf, "info"))

	var sent []*gomail.Message
	n.send = func(m ...*gomail.Message) error {
		sent = append(sent, m...)
		return nil
	}

	require.NoError(t, n.Notify(context.Background(), sampleEvent()))
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"contact@nike.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Deal #7 is now active"}, sent[0].GetHeader("Subject"))

	ev := sampleEvent()
	ev.Account.ContactEmail = ""
	require.NoError(t, n.Notify(context.Background(), ev))
	assert.Len(t, sent, 1)

	n.send = func(...*gomail.Message) error { return errBoom }
	assert.ErrorIs(t, n.Notify(context.Background(), sampleEvent()), errBoom)
}

func TestEmailNotifier_DryRun(t *testing.T) {
	buf := &bytes.Buffer{}
	n := NewEmailNotifier("localhost", 25, "", "", "deals@sponsortrack.local", true, logger.New(buf, "info"))
	n.send = func(...*gomail.Message) error { return errBoom }

	require.NoError(t, n.Notify(context.Background(), sampleEvent()))
	assert.Contains(t, buf.String(), "dry-run")
}

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifier(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, chatID: 42, log: logger.New(&bytes.Buffer{}, "info")}

	require.NoError(t, n.Notify(context.Background(), sampleEvent()))
	require.Len(t, bot.sent, 1)
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Contains(t, msg.Text, "Deal #7")

	bot.err = errBoom
	assert.ErrorIs(t, n.Notify(context.Background(), sampleEvent()), errBoom)
}

func TestTelegramNotifier_DryRunAndNoChat(t *testing.T) {
	buf := &bytes.Buffer{}
	n, err := NewTelegramNotifier("", 42, true, logger.New(buf, "info"))
	require.NoError(t, err)
	require.NoError(t, n.Notify(context.Background(), sampleEvent()))
	assert.Contains(t, buf.String(), "dry-run")

	bot := &fakeBot{}
	n = &TelegramNotifier{bot: bot, log: logger.New(&bytes.Buffer{}, "info")}
	require.NoError(t, n.Notify(context.Background(), sampleEvent()))
	assert.Empty(t, bot.sent)
}
