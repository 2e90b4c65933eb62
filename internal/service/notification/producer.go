package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/library-backend/internal/domain"
)

const (
	publishTimeout = 10 * time.Second
	drainTimeout   = 5 * time.Second
)

type pending struct {
	msg   domain.NotificationMessage
	key   string
	value []byte
}

// Producer hands messages to the queue without blocking the caller.
// A single worker publishes them in Enqueue order.
type Producer struct {
	pub     publisher
	metrics metricsSink
	log     *slog.Logger

	mu     sync.RWMutex
	closed bool
	buf    chan pending
}

// NewProducer creates a Producer with room for bufferSize in-flight messages.
func NewProducer(logger *slog.Logger, pub publisher, metrics metricsSink, bufferSize int) *Producer {
	return &Producer{
		pub:     pub,
		metrics: metrics,
		log:     logger.With("component", "notification_producer"),
		buf:     make(chan pending, bufferSize),
	}
}

// Enqueue schedules msg for publishing and returns immediately.
// Fails with ErrDependencyUnavailable when the buffer is full or the
// producer has stopped; delivery itself is reported asynchronously.
func (p *Producer) Enqueue(ctx context.Context, msg domain.NotificationMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	value, err := encode(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.metrics.EnqueueFailed(ctx, msg.Kind)
		return fmt.Errorf("notification producer stopped: %w", domain.ErrDependencyUnavailable)
	}

	select {
	case p.buf <- pending{msg: msg, key: msg.PartitionKey(), value: value}:
		return nil
	default:
		p.metrics.EnqueueFailed(ctx, msg.Kind)
		return fmt.Errorf("notification buffer full: %w", domain.ErrDependencyUnavailable)
	}
}

// Run publishes buffered messages until ctx is cancelled, then stops
// accepting new ones and flushes what is left.
func (p *Producer) Run(ctx context.Context) error {
	p.log.InfoContext(ctx, "notification producer started")

	for {
		select {
		case <-ctx.Done():
			p.stop()
			p.drain()
			p.log.Info("notification producer stopped")
			return nil
		case job := <-p.buf:
			p.publish(ctx, job)
		}
	}
}

func (p *Producer) stop() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *Producer) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case job := <-p.buf:
			p.publish(ctx, job)
		default:
			return
		}
	}
}

func (p *Producer) publish(ctx context.Context, job pending) {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	offset, err := p.pub.Publish(pubCtx, job.key, job.value)
	p.complete(ctx, job.msg, offset, err)
}

// complete is the delivery callback. Failures are not retried.
func (p *Producer) complete(ctx context.Context, msg domain.NotificationMessage, offset int64, err error) {
	if err != nil {
		p.metrics.EnqueueFailed(ctx, msg.Kind)
		p.log.WarnContext(ctx, "notification publish failed, direct send may be needed",
			slog.String("kind", msg.Kind.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	attrs := []any{slog.String("kind", msg.Kind.String())}
	if offset >= 0 {
		attrs = append(attrs, slog.Int64("offset", offset))
	}
	p.log.InfoContext(ctx, "notification published", attrs...)
}
