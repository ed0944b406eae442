package worker

import (
	"context"
	"fmt"
	"time"

	"cookbook/internal/config"
	"cookbook/internal/recipe"
	"cookbook/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the river client.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// FavoriteSyncInterval is the period of the favorite counter reconciliation.
	// Zero disables the periodic job.
	FavoriteSyncInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:           cfg.Worker.MaxWorkers,
		FavoriteSyncInterval: cfg.Worker.FavoriteSyncInterval,
	}
}

// Config builds the river configuration running the catalog workers.
func Config(ctx context.Context, recipes recipe.Catalog, opts Options) *river.Config {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewFavoriteSyncWorker(recipes))

	maxWorkers := opts.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var periodic []*river.PeriodicJob
	if opts.FavoriteSyncInterval > 0 {
		interval := opts.FavoriteSyncInterval
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return recipe.NewFavoriteSyncArgs(interval), nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	return &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       logger.Slog(ctx),
	}
}

// Start creates and starts a river client processing catalog jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, recipes recipe.Catalog, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), Config(ctx, recipes, opts))
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
