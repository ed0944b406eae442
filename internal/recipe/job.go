package recipe

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// FavoriteSyncArgs schedules a reconciliation of every recipe's favorite
// counter with the users' favorite lists. The job has no parameters, so at
// most one run is queued at a time.
type FavoriteSyncArgs struct {
	// uniquePeriod is the lookback window during which a second insert is
	// considered a duplicate.
	uniquePeriod time.Duration
}

// NewFavoriteSyncArgs returns job args deduplicated over period.
func NewFavoriteSyncArgs(period time.Duration) FavoriteSyncArgs {
	return FavoriteSyncArgs{uniquePeriod: period}
}

func (FavoriteSyncArgs) Kind() string { return "SyncFavoriteCounts" }

func (args FavoriteSyncArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
