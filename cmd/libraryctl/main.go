// Command libraryctl is the operator CLI: schema migrations, catalogue
// maintenance and lending reports against the configured database.
//
// Commands that change or report on the catalogue act as an existing admin
// account, selected with --as.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/library-backend/internal/adapter/postgres"
	adminrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/admin"
	bookrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/book"
	loanrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/loan"
	memberrepo "github.com/heartmarshall/library-backend/internal/adapter/postgres/member"
	"github.com/heartmarshall/library-backend/internal/app"
	"github.com/heartmarshall/library-backend/internal/config"
	"github.com/heartmarshall/library-backend/internal/domain"
	"github.com/heartmarshall/library-backend/internal/service/ledger"
	"github.com/heartmarshall/library-backend/pkg/ctxutil"
)

// env is the state shared by subcommands once config is loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	ledger *ledger.Service
}

var (
	asAdmin    string
	configPath string
	current    env
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "libraryctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libraryctl",
		Short:         "Operate the library backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return connect(cmd.Context())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if current.pool != nil {
				current.pool.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&asAdmin, "as", "", "username of the admin account to act as")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newVersionCmd(),
		newMigrateCmd(),
		newStatsCmd(),
		newBookCmd(),
		newLoansCmd(),
	)

	return root
}

func connect(ctx context.Context) error {
	load := config.Load
	if configPath != "" {
		load = func() (*config.Config, error) { return config.LoadFrom(configPath) }
	}

	cfg, err := load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}

	current = env{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		ledger: ledger.NewService(
			logger,
			bookrepo.New(pool),
			loanrepo.New(pool),
			memberrepo.New(pool),
			postgres.NewTxManager(pool),
			cfg.Lending,
		),
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		// No database needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "libraryctl %s\n", app.BuildVersion())
		},
	}
}

// adminContext resolves --as to an admin identity the services accept.
func adminContext(ctx context.Context) (context.Context, error) {
	if asAdmin == "" {
		return nil, fmt.Errorf("--as is required for this command")
	}

	admin, err := adminrepo.New(current.pool).GetByUsername(ctx, asAdmin)
	if err != nil {
		return nil, fmt.Errorf("admin %q: %w", asAdmin, err)
	}

	ctx = ctxutil.WithUserID(ctx, admin.ID)
	ctx = ctxutil.WithRole(ctx, domain.UserRoleAdmin.String())
	return ctx, nil
}
