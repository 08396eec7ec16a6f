package main

import (
	"context"
	"fmt"
	"time"

	"rentalhub/internal/config"
	"rentalhub/internal/logging"
	"rentalhub/internal/model"
	"rentalhub/internal/repository"
	"rentalhub/internal/server"
	"rentalhub/internal/service"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const commandTimeout = 30 * time.Second

// withDatabase loads configuration, connects and hands fn the database
func withDatabase(cmd *cobra.Command, fn func(ctx context.Context, db *mongo.Database, logger *zap.Logger) error) error {
	cfg := config.New()
	cfg.Log.Format = "console"
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	client, err := server.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	return fn(ctx, client.Database(cfg.Mongo.Database), logger)
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes the API relies on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd, func(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
				if err := repository.EnsureIndexes(ctx, db, logger); err != nil {
					return fmt.Errorf("ensure indexes: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "indexes ensured")
				return nil
			})
		},
	}
}

func promoteCmd() *cobra.Command {
	var email, role string
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set a user's role, e.g. to bootstrap the first admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !model.ValidRole(role) {
				return fmt.Errorf("unknown role %q", role)
			}
			return withDatabase(cmd, func(ctx context.Context, db *mongo.Database, _ *zap.Logger) error {
				users := service.NewUserService(repository.NewUserRepository(db))
				res, err := users.SetRole(ctx, email, role)
				if err != nil {
					return err
				}
				if res.MatchedCount == 0 {
					return fmt.Errorf("no user with email %q; the user must sign in once first", email)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", email, role)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the user")
	cmd.Flags().StringVar(&role, "role", model.RoleAdmin, "role to assign (user, member, admin)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func tokenCmd() *cobra.Command {
	var email, name string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for scripting against the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if cfg.Auth.TokenSecret == "" {
				return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
			}
			token, err := service.NewTokenService(cfg.Auth.TokenSecret).Issue(email, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&name, "name", "", "name claim")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
