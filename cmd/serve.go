package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"cookbook/internal/api"
	"cookbook/internal/api/handler/v1handler"
	"cookbook/internal/category"
	"cookbook/internal/config"
	"cookbook/internal/recipe"
	"cookbook/internal/seed"
	"cookbook/internal/user"
	"cookbook/internal/worker"
	"cookbook/pkg/credential"
	"cookbook/pkg/logger"
	"cookbook/pkg/ratelimit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupWorker starts the river client. Without a postgres pool there is no
// job queue and favorite counters are never reconciled in the background.
func setupWorker(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, recipes recipe.Catalog) func(ctx context.Context) {
	if pool == nil {
		logger.Warn(ctx, "background workers are disabled for this storage driver")

		return func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, pool, recipes, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

// setupLimiters connects to redis and returns the api wide and the rating
// limiters. Both are nil when no redis URL is configured.
func setupLimiters(ctx context.Context, cfg *config.Config) (*ratelimit.Redis, *ratelimit.Redis) {
	limiter, err := ratelimit.New(ctx, ratelimit.Options{
		URL:          cfg.Redis.URL,
		PoolSize:     cfg.Redis.PoolSize,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		Window:       cfg.RateLimit.Window,
		Limit:        cfg.RateLimit.Limit,
		KeyPrefix:    cfg.RateLimit.KeyPrefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create rate limiter", zap.Error(err))
	}
	if limiter == nil {
		logger.Info(ctx, "rate limiting is disabled")

		return nil, nil
	}

	return limiter, limiter.WithLimit("ratings", cfg.RateLimit.RateLimit)
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, pool, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			hasher := credential.New(credential.Options{Cost: cfg.Credential.BcryptCost})
			if withSeed, _ := cmd.Flags().GetBool("seed"); withSeed {
				if err := seed.Run(ctx, strg, hasher); err != nil {
					logger.Fatal(ctx, "could not seed catalog", zap.Error(err))
				}
			}

			categories := category.New(strg)
			users := user.New(strg, hasher)
			recipes := recipe.New(strg, categories, users, recipe.NewOptions(cfg))

			deps := api.Deps{
				Deps: v1handler.Deps{
					Categories: categories,
					Users:      users,
					Recipes:    recipes,
				},
			}
			// assigned only when set, a nil *Redis must not become a non-nil Limiter
			if limiter, ratings := setupLimiters(ctx, cfg); limiter != nil {
				defer func() { _ = limiter.Close() }()
				deps.Limiter, deps.RatingLimiter = limiter, ratings
			}

			stopWorker := setupWorker(ctx, cfg, pool, recipes)
			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	cmd.Flags().Bool("seed", false, "Seed default categories and demo data before serving")

	return cmd
}
