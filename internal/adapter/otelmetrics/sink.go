// Package otelmetrics records notification delivery counters with OpenTelemetry.
package otelmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/heartmarshall/library-backend/internal/domain"
)

// Metric names.
const (
	EmailSentTotal     = "library.email.sent"
	EmailFailedTotal   = "library.email.failed"
	EnqueueFailedTotal = "library.notification.enqueue_failed"
)

// Sink counts email outcomes per notification kind and delivery path.
type Sink struct {
	sent          metric.Int64Counter
	failed        metric.Int64Counter
	enqueueFailed metric.Int64Counter
}

// New registers the counters on meter.
func New(meter metric.Meter) (*Sink, error) {
	sent, err := meter.Int64Counter(EmailSentTotal,
		metric.WithDescription("Emails handed to the SMTP server"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, fmt.Errorf("otelmetrics: %s: %w", EmailSentTotal, err)
	}

	failed, err := meter.Int64Counter(EmailFailedTotal,
		metric.WithDescription("Emails that could not be rendered or sent"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, fmt.Errorf("otelmetrics: %s: %w", EmailFailedTotal, err)
	}

	enqueueFailed, err := meter.Int64Counter(EnqueueFailedTotal,
		metric.WithDescription("Notifications the queue transport refused"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, fmt.Errorf("otelmetrics: %s: %w", EnqueueFailedTotal, err)
	}

	return &Sink{sent: sent, failed: failed, enqueueFailed: enqueueFailed}, nil
}

// EmailSent counts one delivered email.
func (s *Sink) EmailSent(ctx context.Context, kind domain.NotificationKind, path string) {
	s.sent.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("path", path),
	))
}

// EmailFailed counts one email that was dropped after a failed attempt.
func (s *Sink) EmailFailed(ctx context.Context, kind domain.NotificationKind, path string) {
	s.failed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("path", path),
	))
}

// EnqueueFailed counts one message the queue transport did not accept.
func (s *Sink) EnqueueFailed(ctx context.Context, kind domain.NotificationKind) {
	s.enqueueFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
}
