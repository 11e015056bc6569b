// Package store defines interfaces for data persistence operations over the
// two local collections the orchestrator owns: the generated-image history
// and the failed-job queue. These interfaces keep the scheduling core
// independent of the specific storage technology; implementations live under
// internal/platform.
package store
