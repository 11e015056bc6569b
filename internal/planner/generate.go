package planner

import (
	"context"
	"strings"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/task"
)

// NewGenerationRequest describes a fresh generation batch.
type NewGenerationRequest struct {
	// Prompts is the list of subjects to draw; blank entries are skipped.
	Prompts []string

	// BatchCount repeats each prompt this many times, each repetition with
	// a fresh random seed. Values below 1 are treated as 1.
	BatchCount int

	// Base carries the session's generation settings (style, color mode,
	// resolution, print size, frame, palette).
	Base domain.JobConfig

	// ReferenceImages is the session-wide upload state, shared by every
	// task in the batch.
	ReferenceImages []string
}

// PlanNewGeneration expands a request into descriptors: the cross product of
// prompts and batch repetitions, each with a freshly randomized seed.
func PlanNewGeneration(req NewGenerationRequest) ([]domain.JobDescriptor, error) {
	prompts := make([]string, 0, len(req.Prompts))
	for _, p := range req.Prompts {
		if strings.TrimSpace(p) != "" {
			prompts = append(prompts, p)
		}
	}
	if len(prompts) == 0 {
		return nil, ErrNoPrompt
	}

	count := req.BatchCount
	if count < 1 {
		count = 1
	}

	descs := make([]domain.JobDescriptor, 0, len(prompts)*count)
	for _, prompt := range prompts {
		for i := 0; i < count; i++ {
			desc := req.Base.Clone()
			desc.Prompt = prompt
			desc.Seed = domain.NewSeed()
			desc.IsEditing = false
			desc.TransformType = domain.TransformNone
			desc.ReferenceImages = append([]string(nil), req.ReferenceImages...)
			descs = append(descs, desc)
		}
	}

	return descs, nil
}

// NewGeneration plans and runs a fresh generation batch.
func (s *Service) NewGeneration(ctx context.Context, sess *task.Session, req NewGenerationRequest) error {
	descs, err := PlanNewGeneration(req)
	if err != nil {
		return err
	}

	thunks := make([]task.Thunk, len(descs))
	for i, desc := range descs {
		thunks[i] = s.generateThunk(sess, desc, desc.Prompt)
	}

	s.runBatch(ctx, sess, "new_generation", thunks)
	return nil
}
