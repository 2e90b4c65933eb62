package notification

import (
	"context"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Path labels recorded with delivery metrics.
const (
	PathQueue  = "queue"
	PathDirect = "direct"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// publisher is the producer side of the queue transport.
type publisher interface {
	Publish(ctx context.Context, key string, value []byte) (int64, error)
}

// subscriber is the consumer side of the queue transport. Messages sharing
// a key are handed to handle in the order they were published.
type subscriber interface {
	Consume(ctx context.Context, handle func(ctx context.Context, key string, value []byte, offset int64)) error
}

// mailer sends one email synchronously. An empty from selects the default sender.
type mailer interface {
	SendEmail(ctx context.Context, from, to, subject, body string) error
}

// metricsSink records delivery outcomes.
type metricsSink interface {
	EmailSent(ctx context.Context, kind domain.NotificationKind, path string)
	EmailFailed(ctx context.Context, kind domain.NotificationKind, path string)
	EnqueueFailed(ctx context.Context, kind domain.NotificationKind)
}

// sender renders and mails a message. Both delivery paths go through it.
type sender struct {
	mail     mailer
	metrics  metricsSink
	settings Settings
	log      *slog.Logger
}

func (s *sender) deliver(ctx context.Context, msg domain.NotificationMessage, path string) error {
	email, err := Render(msg, s.settings)
	if err != nil {
		s.metrics.EmailFailed(ctx, msg.Kind, path)
		return err
	}

	if err := s.mail.SendEmail(ctx, "", email.To, email.Subject, email.Body); err != nil {
		s.metrics.EmailFailed(ctx, msg.Kind, path)
		return err
	}

	s.metrics.EmailSent(ctx, msg.Kind, path)
	s.log.InfoContext(ctx, "email sent",
		slog.String("kind", msg.Kind.String()),
		slog.String("path", path),
	)
	return nil
}

func encode(msg domain.NotificationMessage) ([]byte, error) {
	return json.Marshal(msg)
}

func decode(value []byte) (domain.NotificationMessage, error) {
	var msg domain.NotificationMessage
	err := json.Unmarshal(value, &msg)
	return msg, err
}
