package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// DirectSender delivers a message inline, bypassing the queue. It is the
// fallback used when the queue cannot accept a message.
type DirectSender struct {
	sender
}

// NewDirectSender creates a DirectSender.
func NewDirectSender(logger *slog.Logger, mail mailer, metrics metricsSink, settings Settings) *DirectSender {
	return &DirectSender{sender: sender{
		mail:     mail,
		metrics:  metrics,
		settings: settings,
		log:      logger.With("component", "direct_sender"),
	}}
}

// Send renders msg and mails it synchronously.
func (d *DirectSender) Send(ctx context.Context, msg domain.NotificationMessage) error {
	if err := d.deliver(ctx, msg, PathDirect); err != nil {
		return fmt.Errorf("direct send %s: %w", msg.Kind, err)
	}
	return nil
}
