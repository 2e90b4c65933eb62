package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/adapter/kafka"
	"github.com/heartmarshall/library-backend/internal/adapter/mail"
	"github.com/heartmarshall/library-backend/internal/adapter/otelmetrics"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/queue"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/service/notification"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

type queuePublisher interface {
	Publish(ctx context.Context, key string, value []byte) (int64, error)
	Close() error
}

type queueSubscriber interface {
	Consume(ctx context.Context, handle func(ctx context.Context, key string, value []byte, offset int64)) error
	Close() error
}

// notificationPipeline groups the pieces of the email path that share a
// lifecycle: the async producer, the dispatcher workflows call, and an
// optional in-process consumer.
type notificationPipeline struct {
	Dispatcher *notification.Dispatcher
	Producer   *notification.Producer
	Consumer   *notification.Consumer
	Checks     []rest.Check

	pub queuePublisher
	sub queueSubscriber
}

func notificationSettings(cfg *config.Config) notification.Settings {
	return notification.Settings{
		OperatorEmail:  cfg.Verification.OperatorEmail,
		ConfirmBaseURL: cfg.Verification.ConfirmBaseURL,
	}
}

func newPublisher(cfg *config.Config, pool *pgxpool.Pool) (queuePublisher, []rest.Check) {
	if cfg.Notification.Driver == config.DriverKafka {
		pub := kafka.NewPublisher(cfg.Kafka, cfg.Notification.Topic)
		return pub, []rest.Check{{Name: "kafka", Pinger: pub}}
	}
	return queue.NewPublisher(pool, cfg.Notification.Topic), nil
}

func newSubscriber(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) queueSubscriber {
	n := cfg.Notification
	if n.Driver == config.DriverKafka {
		return kafka.NewSubscriber(cfg.Kafka, n.Topic, n.GroupID, logger)
	}
	return queue.NewSubscriber(pool, n.Topic, n.GroupID, n.PollInterval, logger).WithRetention(n.Retention)
}

func newNotificationPipeline(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	mailer *mail.Mailer,
	sink *otelmetrics.Sink,
) *notificationPipeline {
	pub, checks := newPublisher(cfg, pool)
	producer := notification.NewProducer(logger, pub, sink, cfg.Notification.BufferSize)

	var dispatcher *notification.Dispatcher
	if cfg.Notification.FallbackDirectSend {
		direct := notification.NewDirectSender(logger, mailer, sink, notificationSettings(cfg))
		dispatcher = notification.NewDispatcher(logger, producer, direct, true)
	} else {
		dispatcher = notification.NewDispatcher(logger, producer, nil, false)
	}

	p := &notificationPipeline{
		Dispatcher: dispatcher,
		Producer:   producer,
		Checks:     checks,
		pub:        pub,
	}

	if cfg.Notification.RunConsumer {
		p.sub = newSubscriber(cfg, pool, logger)
		p.Consumer = notification.NewConsumer(logger, p.sub, mailer, sink, notificationSettings(cfg))
	}

	logger.Info("notification pipeline ready",
		slog.String("driver", cfg.Notification.Driver),
		slog.String("topic", cfg.Notification.Topic),
		slog.Bool("fallback_direct_send", cfg.Notification.FallbackDirectSend),
		slog.Bool("consumer", p.Consumer != nil),
	)

	return p
}

// Close releases the transport clients. Call it after Producer.Run has
// returned so the final drain can still publish.
func (p *notificationPipeline) Close() error {
	var errs []error
	if p.sub != nil {
		errs = append(errs, p.sub.Close())
	}
	errs = append(errs, p.pub.Close())
	return errors.Join(errs...)
}
