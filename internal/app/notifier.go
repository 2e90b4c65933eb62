package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/library-backend/internal/adapter/mail"
	"github.com/heartmarshall/library-backend/internal/adapter/otelmetrics"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/service/notification"
)

// RunNotifier runs only the queue consumer, for deployments that keep email
// delivery out of the API process.
func RunNotifier(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log).With("process", "notifier")

	logger.Info("starting notifier",
		buildAttr(),
		slog.String("driver", cfg.Notification.Driver),
		slog.String("topic", cfg.Notification.Topic),
		slog.String("group_id", cfg.Notification.GroupID),
	)

	var pool *pgxpool.Pool
	if cfg.Notification.Driver == config.DriverPostgres {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	meterProvider, err := NewMeterProvider(ctx, cfg.Metrics)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("meter provider shutdown", slog.String("error", err.Error()))
		}
	}()

	sink, err := otelmetrics.New(meterProvider.Meter(serviceName))
	if err != nil {
		return err
	}

	mailer, err := mail.New(cfg.Mail)
	if err != nil {
		return err
	}

	sub := newSubscriber(cfg, pool, logger)
	defer func() {
		if err := sub.Close(); err != nil {
			logger.Warn("close subscriber", slog.String("error", err.Error()))
		}
	}()

	consumer := notification.NewConsumer(logger, sub, mailer, sink, notificationSettings(cfg))
	return consumer.Run(ctx)
}
