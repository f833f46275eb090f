package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"hdnotes/config"
	logs "hdnotes/internal/infra/log"
	"hdnotes/internal/infra/persistence/postgres"
	"hdnotes/internal/usecase"
	"hdnotes/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "hdnotesctl",
		Short:         "Maintenance commands for the hdnotes database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Overall time limit of the command")

	root.AddCommand(
		newMigrateCommand(&timeout),
		newSessionsCommand(&timeout),
	)

	return root
}

func newMigrateCommand(timeout *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), *timeout, func(ctx context.Context, deps *appDeps) error {
				if err := postgres.Migrate(ctx, deps.DB); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema migrated")

				return nil
			})
		},
	}
}

func newSessionsCommand(timeout *time.Duration) *cobra.Command {
	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "Refresh token maintenance",
	}

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete every expired refresh token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), *timeout, func(ctx context.Context, deps *appDeps) error {
				removed, err := deps.Sessions.CleanupExpiredSessions(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired sessions\n", removed)

				return nil
			})
		},
	}

	var accountID string
	revoke := &cobra.Command{
		Use:   "revoke",
		Short: "End every session of one account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(accountID)
			if err != nil {
				return errors.Wrap(err, "--account must be a UUID")
			}

			return withApp(cmd.Context(), *timeout, func(ctx context.Context, deps *appDeps) error {
				if err := deps.Sessions.RevokeAllSessions(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "revoked sessions of %s\n", id)

				return nil
			})
		},
	}
	revoke.Flags().StringVar(&accountID, "account", "", "Account ID")
	_ = revoke.MarkFlagRequired("account")

	sessions.AddCommand(purge, revoke)

	return sessions
}

type appDeps struct {
	DB       *gorm.DB
	Sessions usecase.SessionUsecase
}

// withApp starts the persistence graph, runs fn and stops the graph again.
func withApp(parent context.Context, timeout time.Duration, fn func(ctx context.Context, deps *appDeps) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	deps := &appDeps{}
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewSessionService,
		),
		fx.Populate(&deps.DB, &deps.Sessions),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build dependencies")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start dependencies")
	}
	defer func() { _ = app.Stop(context.Background()) }()

	return fn(ctx, deps)
}
