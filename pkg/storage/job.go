package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues river jobs. Inside a transaction the job only becomes
// visible once the transaction commits.
type JobStorage interface {
	// AddJob returns false when river skipped the insert as a duplicate of a
	// unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
