package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/library-backend/internal/adapter/mail"
	"github.com/heartmarshall/library-backend/internal/adapter/otelmetrics"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	adminrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/admin"
	bookrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/book"
	loanrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/loan"
	memberrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/member"
	submissionrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/submission"
	tokenrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/library-backend/internal/auth"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
	"github.com/heartmarshall/library-backend/internal/service/registration"
	"github.com/heartmarshall/library-backend/internal/service/submission"
	"github.com/heartmarshall/library-backend/internal/transport/middleware"
	"github.com/heartmarshall/library-backend/internal/transport/rest"
)

const (
	rateLimitCleanupInterval = time.Minute
	metricsShutdownTimeout   = 5 * time.Second
)

// Run is the application entry point. It wires storage, the notification
// pipeline, services and the HTTP server, then blocks until ctx is
// cancelled or a component fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttr(),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

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

	pipeline := newNotificationPipeline(logger, cfg, pool, mailer, sink)
	defer func() {
		if err := pipeline.Close(); err != nil {
			logger.Warn("close notification transport", slog.String("error", err.Error()))
		}
	}()

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer limiter.Stop()

	handler := NewHTTPHandler(HTTPDeps{
		Logger:   logger,
		Config:   cfg,
		Pool:     pool,
		Notifier: pipeline.Dispatcher,
		Limiter:  limiter,
		Checks:   pipeline.Checks,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// The producer outlives the HTTP server so requests still in flight
	// during shutdown can enqueue their notifications.
	producerCtx, stopProducer := context.WithCancel(context.WithoutCancel(ctx))
	defer stopProducer()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return pipeline.Producer.Run(producerCtx)
	})

	if pipeline.Consumer != nil {
		g.Go(func() error {
			return pipeline.Consumer.Run(gctx)
		})
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		defer stopProducer()

		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("application stopped")
	return err
}

// Notifier schedules an email. Workflows treat its error as advisory.
type Notifier interface {
	Notify(ctx context.Context, msg domain.NotificationMessage) error
}

// HTTPDeps are the shared resources the HTTP stack is built on.
type HTTPDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Pool     *pgxpool.Pool
	Notifier Notifier
	Limiter  *middleware.RateLimiter // optional
	Checks   []rest.Check            // in addition to the database
}

// NewHTTPHandler wires repositories, services and REST handlers behind the
// standard middleware chain.
func NewHTTPHandler(d HTTPDeps) http.Handler {
	cfg := d.Config
	pool := d.Pool

	txm := postgres.NewTxManager(pool)
	members := memberrepo.New(pool)

	ledgerSvc := ledger.NewService(d.Logger, bookrepo.New(pool), loanrepo.New(pool), members, txm, cfg.Lending)
	registrationSvc := registration.NewService(
		d.Logger,
		members,
		adminrepo.New(pool),
		tokenrepo.New(pool),
		txm,
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		d.Notifier,
		cfg.Verification,
	)
	submissionSvc := submission.NewService(d.Logger, submissionrepo.New(pool), members, ledgerSvc, txm, d.Notifier)

	checks := append([]rest.Check{{Name: "database", Pinger: pool}}, d.Checks...)

	handlers := rest.Handlers{
		Health:       rest.NewHealthHandler(Version, checks...),
		Ledger:       rest.NewLedgerHandler(ledgerSvc, d.Logger),
		Registration: rest.NewRegistrationHandler(registrationSvc, d.Logger),
		Submission:   rest.NewSubmissionHandler(submissionSvc, d.Logger),
	}
	if d.Limiter != nil {
		handlers.Throttle = d.Limiter.Limit(cfg.Server.PublicRateLimit)
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.SkipPaths(middleware.Logger(d.Logger), "/live", "/ready"),
		middleware.Identity(auth.NewIdentityVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	)(rest.NewRouter(handlers))
}
