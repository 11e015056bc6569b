package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Hachi2308/coloring/internal/domain"
)

// MemoryImageStore is an in-memory ImageStore. It backs tests and serves as
// a volatile fallback when no database is configured.
type MemoryImageStore struct {
	mu     sync.RWMutex
	images map[uuid.UUID]*domain.GeneratedImage
}

// NewMemoryImageStore creates an empty in-memory image store.
func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{
		images: make(map[uuid.UUID]*domain.GeneratedImage),
	}
}

// PutImage saves a history entry, keyed by its ID.
func (s *MemoryImageStore) PutImage(ctx context.Context, img *domain.GeneratedImage) error {
	if err := img.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *img
	s.images[img.ID] = &cp
	return nil
}

// GetAllImages returns every history entry, newest first.
func (s *MemoryImageStore) GetAllImages(ctx context.Context) ([]*domain.GeneratedImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.GeneratedImage, 0, len(s.images))
	for _, img := range s.images {
		cp := *img
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}

// DeleteImage removes a single history entry.
func (s *MemoryImageStore) DeleteImage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[id]; !ok {
		return ErrImageNotFound
	}

	delete(s.images, id)
	return nil
}

// ClearImages removes every history entry.
func (s *MemoryImageStore) ClearImages(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images = make(map[uuid.UUID]*domain.GeneratedImage)
	return nil
}

// MemoryFailedJobStore is an in-memory FailedJobStore counterpart to
// MemoryImageStore.
type MemoryFailedJobStore struct {
	mu   sync.RWMutex
	jobs map[string]*domain.FailedJob
}

// NewMemoryFailedJobStore creates an empty in-memory failed-job store.
func NewMemoryFailedJobStore() *MemoryFailedJobStore {
	return &MemoryFailedJobStore{
		jobs: make(map[string]*domain.FailedJob),
	}
}

// PutFailedJob saves a failed-job record, keyed by its ID.
func (s *MemoryFailedJobStore) PutFailedJob(ctx context.Context, job *domain.FailedJob) error {
	if err := job.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *job
	cp.Config = job.Config.Clone()
	s.jobs[job.ID] = &cp
	return nil
}

// GetAllFailedJobs returns every record, newest first.
func (s *MemoryFailedJobStore) GetAllFailedJobs(ctx context.Context) ([]*domain.FailedJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.FailedJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		cp := *job
		cp.Config = job.Config.Clone()
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}

// DeleteFailedJob removes a single record.
func (s *MemoryFailedJobStore) DeleteFailedJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrFailedJobNotFound
	}

	delete(s.jobs, id)
	return nil
}

// ClearFailedJobs removes every record.
func (s *MemoryFailedJobStore) ClearFailedJobs(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = make(map[string]*domain.FailedJob)
	return nil
}

// Interface conformance checks
var (
	_ ImageStore     = (*MemoryImageStore)(nil)
	_ FailedJobStore = (*MemoryFailedJobStore)(nil)
)
