package planner

import "errors"

// Common errors returned by the planner package
var (
	// ErrNoPrompt is returned when a new-generation batch has no usable prompt.
	ErrNoPrompt = errors.New("at least one non-empty prompt is required")

	// ErrNoSelection is returned when a selection-based batch is requested
	// with nothing selected.
	ErrNoSelection = errors.New("no history entries selected")

	// ErrNoFailedJobs is returned when retry-all is requested with an empty queue.
	ErrNoFailedJobs = errors.New("no failed jobs to retry")
)
