package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables the API needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), opts, func(ctx context.Context, _ *config.Config, database *db.Database, logger *zap.Logger) error {
				if err := db.Migrate(ctx, database); err != nil {
					return err
				}
				logger.Info("Schema applied")
				fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
				return nil
			})
		},
	}
}

type catalogSeeder interface {
	SeedCatalog(ctx context.Context) (storage.SeedResult, error)
}

func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default catalog into empty tables",
		Long: `Insert the default merchandise and heroes when their tables are empty
and store the default bank details when none are saved. Tables that
already hold records are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), opts, func(ctx context.Context, _ *config.Config, database *db.Database, logger *zap.Logger) error {
				stg := storage.NewStorage(
					database,
					postgresql.NewOrderRepo(database),
					postgresql.NewMerchRepo(database),
					postgresql.NewHeroRepo(database),
					postgresql.NewSettingsRepo(database),
					postgresql.NewOutboxTaskRepo(),
					logger.Named("storage"),
				)
				return seed(ctx, stg, cmd.OutOrStdout())
			})
		},
	}
}

func seed(ctx context.Context, seeder catalogSeeder, out io.Writer) error {
	res, err := seeder.SeedCatalog(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "merch items inserted: %d\nheroes inserted: %d\nbank info written: %t\n", res.Merch, res.Heroes, res.BankInfo)
	return nil
}
