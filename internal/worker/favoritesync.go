package worker

import (
	"context"
	"fmt"
	"time"

	"cookbook/internal/recipe"
	"cookbook/pkg/logger"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// FavoriteSyncWorker reconciles recipe favorite counters with the favorite
// lists held by users. The lists are authoritative; counters drift whenever a
// favorite is added or removed and are only corrected here.
type FavoriteSyncWorker struct {
	river.WorkerDefaults[recipe.FavoriteSyncArgs]

	recipes recipe.Catalog
}

// NewFavoriteSyncWorker constructs a FavoriteSyncWorker.
func NewFavoriteSyncWorker(recipes recipe.Catalog) *FavoriteSyncWorker {
	return &FavoriteSyncWorker{recipes: recipes}
}

func (w *FavoriteSyncWorker) Timeout(*river.Job[recipe.FavoriteSyncArgs]) time.Duration {
	return 5 * time.Minute
}

func (w *FavoriteSyncWorker) Work(ctx context.Context, job *river.Job[recipe.FavoriteSyncArgs]) error {
	ctx, span := otel.Tracer("cookbook/internal/worker").Start(ctx, "worker.FavoriteSync",
		trace.WithAttributes(attribute.Int64("job.id", job.ID), attribute.Int("job.attempt", job.Attempt)))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("attempt", job.Attempt))

	changed, err := w.recipes.SyncFavoriteCounts(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "error syncing favorite counts", zap.Error(err))

		return fmt.Errorf("could not sync favorite counts: %w", err)
	}

	logger.Info(ctx, "favorite counts synced", zap.Int64("changed", changed))

	return nil
}
