package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cookbook/internal/recipe"
	mockrecipe "cookbook/internal/recipe/mock"
	"cookbook/internal/worker"
	"cookbook/pkg/domain"
	"cookbook/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64) *river.Job[recipe.FavoriteSyncArgs] {
	return &river.Job[recipe.FavoriteSyncArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   recipe.NewFavoriteSyncArgs(time.Minute),
	}
}

func TestFavoriteSyncWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockrecipe.NewMockCatalog(ctrl)
	w := worker.NewFavoriteSyncWorker(mock)

	mock.EXPECT().SyncFavoriteCounts(gomock.Any()).Return(int64(3), nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestFavoriteSyncWorker_Work_ErrorIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockrecipe.NewMockCatalog(ctrl)
	w := worker.NewFavoriteSyncWorker(mock)

	cause := domain.StoreError(errors.New("connection refused"), "could not sync favorite counts")
	mock.EXPECT().SyncFavoriteCounts(gomock.Any()).Return(int64(0), cause)

	err := w.Work(context.Background(), makeJob(2))
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestFavoriteSyncArgs(t *testing.T) {
	args := recipe.NewFavoriteSyncArgs(time.Hour)
	require.Equal(t, "SyncFavoriteCounts", args.Kind())

	opts := args.InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
	require.Equal(t, 3, opts.MaxAttempts)
}

func TestConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockrecipe.NewMockCatalog(ctrl)

	cfg := worker.Config(context.Background(), mock, worker.Options{MaxWorkers: 0, FavoriteSyncInterval: time.Minute})
	require.Equal(t, 1, cfg.Queues[river.QueueDefault].MaxWorkers)
	require.Len(t, cfg.PeriodicJobs, 1)
	require.NotNil(t, cfg.Workers)

	cfg = worker.Config(context.Background(), mock, worker.Options{MaxWorkers: 4})
	require.Equal(t, 4, cfg.Queues[river.QueueDefault].MaxWorkers)
	require.Empty(t, cfg.PeriodicJobs)
}
