package services

import (
	"context"
	"errors"
	"fmt"

	"sponsortrack/internal/models"
)

type DealEventKind string

const (
	DealCreated       DealEventKind = "deal_created"
	DealStatusChanged DealEventKind = "deal_status_changed"
)

type DealEvent struct {
	Kind           DealEventKind
	Deal           models.Deal
	Account        *models.Account
	PreviousStatus models.DealStatus
}

// Notifier informs people outside the system about deal events.
type Notifier interface {
	Notify(ctx context.Context, ev DealEvent) error
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, DealEvent) error { return nil }

// MultiNotifier отправляет событие всем каналам и собирает ошибки.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, ev DealEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func accountName(ev DealEvent) string {
	if ev.Account != nil {
		return ev.Account.Name
	}
	return fmt.Sprintf("#%d", ev.Deal.AccountID)
}

func eventSubject(ev DealEvent) string {
	switch ev.Kind {
	case DealStatusChanged:
		return fmt.Sprintf("Deal #%d is now %s", ev.Deal.ID, ev.Deal.Status)
	default:
		return fmt.Sprintf("New deal #%d for %s", ev.Deal.ID, accountName(ev))
	}
}

func eventText(ev DealEvent) string {
	d := ev.Deal
	text := fmt.Sprintf("%s\nAccount: %s\nValue: $%s\nPeriod: %s – %s\nStatus: %s",
		eventSubject(ev), accountName(ev), d.Value.StringFixed(2), d.StartDate, d.EndDate, d.Status)
	if ev.Kind == DealStatusChanged {
		text += fmt.Sprintf(" (was %s)", ev.PreviousStatus)
	}
	return text
}
