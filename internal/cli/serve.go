package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/kafka"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
	"github.com/invaderrssofficial-source/invaders.final/internal/server"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	var transport string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API and publish audit entries",
		Long: `Start the HTTP API on the configured transport together with the
outbox publisher. Stops gracefully on SIGINT or SIGTERM.

Example:
  invaders serve --config ./invaders.yaml
  invaders serve --transport edge`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), opts, func(ctx context.Context, cfg *config.Config, database *db.Database, logger *zap.Logger) error {
				if transport != "" {
					cfg.Server.Transport = transport
				}
				return serve(ctx, cfg, database, logger)
			})
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "transport variant (buffered|standard|watchdog|edge)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, database *db.Database, logger *zap.Logger) error {
	outboxRepo := postgresql.NewOutboxTaskRepo()
	stg := storage.NewStorage(
		database,
		postgresql.NewOrderRepo(database),
		postgresql.NewMerchRepo(database),
		postgresql.NewHeroRepo(database),
		postgresql.NewSettingsRepo(database),
		outboxRepo,
		logger.Named("storage"),
	)

	audit := server.NewAuditManager(stg, cfg.Kafka.Topic, cfg.Audit.Workers, cfg.Audit.BatchSize, cfg.Audit.FlushTimeout, logger.Named("audit"))
	srv := server.New(cfg, stg, postgresql.NewUserRepo(database), audit, logger.Named("server"))

	producer := kafka.NewProducer(cfg.Kafka, logger.Named("producer"))
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfigFrom(cfg.Kafka), logger.Named("publisher"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return publisher.Run(gctx) })

	return g.Wait()
}
