package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/library-backend/internal/domain"
)

type enqueuer interface {
	Enqueue(ctx context.Context, msg domain.NotificationMessage) error
}

type directSender interface {
	Send(ctx context.Context, msg domain.NotificationMessage) error
}

// Dispatcher is what workflows call to notify someone. It prefers the queue
// and falls back to sending inline when the queue refuses the message.
type Dispatcher struct {
	queue    enqueuer
	direct   directSender
	fallback bool
	log      *slog.Logger
}

// NewDispatcher creates a Dispatcher. direct may be nil when fallback is off.
func NewDispatcher(logger *slog.Logger, queue enqueuer, direct directSender, fallback bool) *Dispatcher {
	return &Dispatcher{
		queue:    queue,
		direct:   direct,
		fallback: fallback && direct != nil,
		log:      logger.With("component", "notification_dispatcher"),
	}
}

// Notify schedules msg for delivery. A nil error means the message was
// either queued or already sent; callers treat a non-nil error as advisory.
func (d *Dispatcher) Notify(ctx context.Context, msg domain.NotificationMessage) error {
	err := d.queue.Enqueue(ctx, msg)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) || !d.fallback {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	d.log.WarnContext(ctx, "queue unavailable, sending directly",
		slog.String("kind", msg.Kind.String()),
		slog.String("error", err.Error()),
	)

	if sendErr := d.direct.Send(ctx, msg); sendErr != nil {
		return fmt.Errorf("enqueue notification: %w; fallback: %w", err, sendErr)
	}
	return nil
}
