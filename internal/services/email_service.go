package services

import (
	"context"
	"fmt"
	"html"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// EmailNotifier пишет на contact_email аккаунта сделки.
type EmailNotifier struct {
	from   string
	dryRun bool
	send   func(m ...*gomail.Message) error
	log    *logrus.Logger
}

func NewEmailNotifier(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string, dryRun bool, log *logrus.Logger) *EmailNotifier {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &EmailNotifier{
		from:   fromEmail,
		dryRun: dryRun,
		send:   dialer.DialAndSend,
		log:    log,
	}
}

func (s *EmailNotifier) Notify(_ context.Context, ev DealEvent) error {
	if ev.Account == nil || ev.Account.ContactEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", ev.Account.ContactEmail)
	m.SetHeader("Subject", eventSubject(ev))
	m.SetBody("text/plain", eventText(ev))
	m.AddAlternative("text/html", fmt.Sprintf(`
		<h3>%s</h3>
		<pre>%s</pre>
	`, html.EscapeString(eventSubject(ev)), html.EscapeString(eventText(ev))))

	if s.dryRun {
		s.log.WithFields(logrus.Fields{
			"to":      ev.Account.ContactEmail,
			"subject": eventSubject(ev),
		}).Info("[email][dry-run] deal notification")
		return nil
	}
	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send deal email: %w", err)
	}
	return nil
}
