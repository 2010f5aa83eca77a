package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/logger"
)

const configEnv = "INVADERS_CONFIG"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
}

// NewRootCommand creates the root command for the storefront backend.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "invaders",
		Short: "Club Invaders storefront API",
		Long: `Backend for the Club Invaders storefront: orders, merchandise, heroes
and bank settings served as tRPC procedures over HTTP.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", os.Getenv(configEnv), "path to a YAML config file (env "+configEnv+")")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewInitAdminCommand(opts))

	return cmd
}

func (o *RootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// withStore loads the configuration, opens the store and hands both to fn.
func withStore(ctx context.Context, opts *RootOptions, fn func(ctx context.Context, cfg *config.Config, database *db.Database, logger *zap.Logger) error) error {
	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signalContext(ctx)
	defer stop()

	database, err := db.NewDb(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(ctx, cfg, database, logger)
}
