// Package task implements the job-orchestration core: a cancellable pacing
// primitive, a bounded-concurrency runner that starts tasks in order with a
// fixed delay between starts, a retrying executor that classifies generation
// failures and persists terminal ones to the failed-job queue, and the
// per-batch session state the two share.
package task
