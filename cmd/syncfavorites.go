package main

import (
	"context"

	"cookbook/internal/category"
	"cookbook/internal/config"
	"cookbook/internal/recipe"
	"cookbook/internal/user"
	"cookbook/pkg/credential"
	"cookbook/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncFavoritesCommand constructs the 'sync-favorites' subcommand. By default
// it enqueues one reconciliation job for the workers; --now runs it inline.
func syncFavoritesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-favorites",
		Short: "Recomputes recipe favorite counters from the users' favorites",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, _, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if now, _ := cmd.Flags().GetBool("now"); now {
				categories := category.New(strg)
				users := user.New(strg, credential.New(credential.Options{Cost: cfg.Credential.BcryptCost}))
				changed, err := recipe.New(strg, categories, users, recipe.NewOptions(cfg)).SyncFavoriteCounts(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not sync favorite counters", zap.Error(err))
				}
				logger.Info(ctx, "favorite counters synced", zap.Int64("changed", changed))

				return
			}

			added, err := strg.AddJob(ctx, recipe.NewFavoriteSyncArgs(cfg.Worker.FavoriteSyncInterval), nil)
			if err != nil {
				logger.Fatal(ctx, "could not enqueue favorite sync", zap.Error(err))
			}
			if !added {
				logger.Info(ctx, "a favorite sync is already queued")

				return
			}
			logger.Info(ctx, "favorite sync enqueued")
		},
	}

	cmd.Flags().Bool("now", false, "Run the reconciliation inline instead of enqueuing a job")

	return cmd
}
