package notification

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Consumer drains the queue and mails each message once. A message that
// cannot be decoded or sent is logged and counted, then considered consumed.
type Consumer struct {
	sender
	sub subscriber
}

// NewConsumer creates a Consumer.
func NewConsumer(logger *slog.Logger, sub subscriber, mail mailer, metrics metricsSink, settings Settings) *Consumer {
	return &Consumer{
		sender: sender{
			mail:     mail,
			metrics:  metrics,
			settings: settings,
			log:      logger.With("component", "notification_consumer"),
		},
		sub: sub,
	}
}

// Run blocks consuming messages until ctx is cancelled or the transport fails.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.InfoContext(ctx, "notification consumer started")
	err := c.sub.Consume(ctx, c.handle)
	if ctx.Err() != nil {
		c.log.Info("notification consumer stopped")
		return nil
	}
	return err
}

func (c *Consumer) handle(ctx context.Context, key string, value []byte, offset int64) {
	msg, err := decode(value)
	if err != nil {
		c.metrics.EmailFailed(ctx, domain.NotificationKind(""), PathQueue)
		c.log.ErrorContext(ctx, "decode notification",
			slog.String("key", key),
			slog.Int64("offset", offset),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := c.deliver(ctx, msg, PathQueue); err != nil {
		c.log.ErrorContext(ctx, "deliver notification",
			slog.String("kind", msg.Kind.String()),
			slog.String("key", key),
			slog.Int64("offset", offset),
			slog.String("error", err.Error()),
		)
	}
}
