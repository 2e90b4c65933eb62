// Command cleanup-tokens deletes verification tokens that were never used
// and are older than verification.token_ttl. It is intended to be invoked
// by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	"github.com/heartmarshall/library-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/library-backend/internal/app"
	"github.com/heartmarshall/library-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cutoff := time.Now().UTC().Add(-cfg.Verification.TokenTTL)

	deleted, err := token.New(pool).DeleteStale(ctx, cutoff)
	if err != nil {
		logger.Error("token cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("token cleanup completed",
		slog.Int("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
