package task

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/journal"
)

// Session carries the mutable state of one user-triggered batch operation:
// the advisory stop flag, the gallery selection, the cached failed-job list
// and the journal. It is passed explicitly into the runner and executor
// rather than living as ambient global state.
type Session struct {
	stopRequested atomic.Bool

	mu       sync.RWMutex
	selected map[uuid.UUID]struct{}
	failed   []*domain.FailedJob

	journal *journal.Journal
}

// NewSession creates a session with an empty selection and the given journal.
func NewSession(j *journal.Journal) *Session {
	return &Session{
		selected: make(map[uuid.UUID]struct{}),
		journal:  j,
	}
}

// Journal returns the session's journal.
func (s *Session) Journal() *journal.Journal {
	return s.journal
}

// RequestStop sets the cooperative-cancellation flag. It never aborts an
// in-flight network call; the runner and executor consult the flag at their
// safe points.
func (s *Session) RequestStop() {
	s.stopRequested.Store(true)
}

// Stopped reports whether a stop has been requested.
func (s *Session) Stopped() bool {
	return s.stopRequested.Load()
}

// BeginBatch clears the stop flag at the start of a batch operation.
func (s *Session) BeginBatch() {
	s.stopRequested.Store(false)
}

// EndBatch clears the stop flag again once a batch settles, regardless of
// success, failure or cancellation. Callers defer it right after BeginBatch.
func (s *Session) EndBatch() {
	s.stopRequested.Store(false)
}

// Select adds a history entry to the selection.
func (s *Session) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[id] = struct{}{}
}

// Deselect removes a history entry from the selection.
func (s *Session) Deselect(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selected, id)
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[uuid.UUID]struct{})
}

// IsSelected reports whether the given entry is selected.
func (s *Session) IsSelected(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// SelectionSize returns the number of selected entries.
func (s *Session) SelectionSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// SetFailedJobs replaces the in-memory failed-job cache, typically after a
// fresh read from durable storage.
func (s *Session) SetFailedJobs(jobs []*domain.FailedJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = make([]*domain.FailedJob, len(jobs))
	copy(s.failed, jobs)
}

// FailedJobs returns a copy of the in-memory failed-job cache.
func (s *Session) FailedJobs() []*domain.FailedJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.FailedJob, len(s.failed))
	copy(out, s.failed)
	return out
}

// AppendFailedJob adds one record to the cache. Each completion only appends
// its own record, so concurrent appenders interleave safely.
func (s *Session) AppendFailedJob(job *domain.FailedJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, job)
}

// RemoveFailedJob filters one record out of the cache by ID.
func (s *Session) RemoveFailedJob(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.failed[:0]
	for _, job := range s.failed {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	s.failed = kept
}
