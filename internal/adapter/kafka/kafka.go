// Package kafka implements the notification transport on Apache Kafka.
//
// Messages are keyed by partition key and routed with a hash balancer, so all
// messages for one key land on one partition and are read back in order.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
)

// Publisher writes to one topic with acks from all in-sync replicas.
type Publisher struct {
	w       *kafka.Writer
	brokers []string
}

// NewPublisher creates a Publisher for topic.
func NewPublisher(cfg config.KafkaConfig, topic string) *Publisher {
	return &Publisher{
		brokers: cfg.Brokers(),
		w: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers()...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			WriteTimeout:           cfg.WriteTimeout,
			BatchTimeout:           10 * time.Millisecond,
			MaxAttempts:            3,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes one message and waits for the broker acknowledgement.
// Kafka assigns offsets per partition and the writer does not report them,
// so the returned position is always -1.
func (p *Publisher) Publish(ctx context.Context, key string, value []byte) (int64, error) {
	err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value})
	if err != nil {
		return -1, fmt.Errorf("kafka publish: %w: %w", domain.ErrDependencyUnavailable, err)
	}
	return -1, nil
}

// Ping dials the brokers in order and succeeds on the first that answers.
func (p *Publisher) Ping(ctx context.Context) error {
	lastErr := errors.New("no brokers configured")
	for _, addr := range p.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", addr)
		if err == nil {
			return conn.Close()
		}
		lastErr = err
	}
	return fmt.Errorf("kafka ping: %w: %w", domain.ErrDependencyUnavailable, lastErr)
}

// Close flushes pending writes and releases connections.
func (p *Publisher) Close() error {
	return p.w.Close()
}

// Subscriber reads one topic as a member of a consumer group.
type Subscriber struct {
	r   *kafka.Reader
	log *slog.Logger
}

// NewSubscriber creates a group reader for topic.
func NewSubscriber(cfg config.KafkaConfig, topic, groupID string, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers(),
			GroupID:     groupID,
			Topic:       topic,
			MinBytes:    1,
			MaxBytes:    10e6,
			StartOffset: kafka.FirstOffset,
		}),
		log: logger.With("transport", "kafka", "topic", topic, "group", groupID),
	}
}

// Consume delivers messages to handle until ctx is done. Each message is
// committed after handle returns; a message in flight at shutdown is not
// committed and is delivered again.
func (s *Subscriber) Consume(ctx context.Context, handle func(ctx context.Context, key string, value []byte, offset int64)) error {
	for {
		m, err := s.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("kafka fetch: %w: %w", domain.ErrDependencyUnavailable, err)
		}

		handle(ctx, string(m.Key), m.Value, m.Offset)
		if ctx.Err() != nil {
			return nil
		}

		if err := s.r.CommitMessages(ctx, m); err != nil {
			s.log.WarnContext(ctx, "kafka commit failed",
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Close leaves the consumer group.
func (s *Subscriber) Close() error {
	return s.r.Close()
}
