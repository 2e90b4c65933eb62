// Package mail sends plain-text email over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Mailer delivers one message per call, synchronously.
type Mailer struct {
	client *gomail.Client
	from   string
}

// New creates a Mailer from MailConfig. No connection is opened until Send.
func New(cfg config.MailConfig) (*Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: new client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// SendEmail sends a plain-text message. An empty from uses the configured sender.
func (m *Mailer) SendEmail(ctx context.Context, from, to, subject, body string) error {
	if from == "" {
		from = m.from
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("mail: from %q: %w", from, domain.ErrValidation)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail: to %q: %w", to, domain.ErrValidation)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send: %w: %w", domain.ErrDependencyUnavailable, err)
	}
	return nil
}

func tlsPolicy(s string) gomail.TLSPolicy {
	switch strings.ToLower(s) {
	case "mandatory":
		return gomail.TLSMandatory
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSOpportunistic
	}
}
