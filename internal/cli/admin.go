package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
	"github.com/invaderrssofficial-source/invaders.final/internal/db"
	"github.com/invaderrssofficial-source/invaders.final/internal/repository/postgresql"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

var ErrMissingAdminCredentials = errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set")

func NewInitAdminCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-admin",
		Short: "Create the admin user from ADMIN_USERNAME and ADMIN_PASSWORD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), opts, func(ctx context.Context, cfg *config.Config, database *db.Database, _ *zap.Logger) error {
				return initAdmin(ctx, postgresql.NewUserRepo(database), cfg.Auth, cmd.OutOrStdout())
			})
		},
	}
}

func initAdmin(ctx context.Context, users storage.UserRepository, auth config.AuthConfig, out io.Writer) error {
	if auth.AdminUsername == "" || auth.AdminPassword == "" {
		return ErrMissingAdminCredentials
	}

	exists, err := users.Exists(ctx, auth.AdminUsername)
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if exists {
		fmt.Fprintln(out, "Admin user already exists.")
		return nil
	}

	if err := users.CreateUser(ctx, auth.AdminUsername, auth.AdminPassword); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	fmt.Fprintln(out, "Admin user created successfully.")
	return nil
}
