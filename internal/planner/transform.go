package planner

import (
	"context"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/task"
)

// Prompt prefixes stored on transform outputs so history distinguishes them
// from their source entries.
const (
	colorizePrefix   = "Colorized: "
	decolorizePrefix = "Line Art: "
)

// PlanBatchEdit builds one descriptor per selected entry. The entry's own
// image is the sole reference, and the resolution comes from the target
// entry rather than the global config.
func PlanBatchEdit(selected []*domain.GeneratedImage, instruction string, base domain.JobConfig) ([]domain.JobDescriptor, error) {
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	descs := make([]domain.JobDescriptor, 0, len(selected))
	for _, entry := range selected {
		desc := base.Clone()
		desc.Prompt = instruction
		desc.Seed = domain.NewSeed()
		desc.IsEditing = true
		desc.Resolution = entry.Resolution
		desc.PrintSize = entry.PrintSize
		desc.ReferenceImages = []string{entry.URL}
		desc.TransformType = domain.TransformNone
		descs = append(descs, desc)
	}

	return descs, nil
}

// PlanBatchUpscale is PlanBatchEdit with the resolution forced to the
// requested target (2k/4k) and the entry's own prompt carried through.
func PlanBatchUpscale(selected []*domain.GeneratedImage, targetResolution string, base domain.JobConfig) ([]domain.JobDescriptor, error) {
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	descs := make([]domain.JobDescriptor, 0, len(selected))
	for _, entry := range selected {
		desc := base.Clone()
		desc.Prompt = entry.Prompt
		desc.Seed = domain.NewSeed()
		desc.IsEditing = true
		desc.Resolution = targetResolution
		desc.PrintSize = entry.PrintSize
		desc.ReferenceImages = []string{entry.URL}
		desc.TransformType = domain.TransformNone
		descs = append(descs, desc)
	}

	return descs, nil
}

// PlanBatchTransform builds colorize or decolorize descriptors: color mode
// forced to color/bw respectively, transform type recorded, the entry's own
// image as sole reference.
func PlanBatchTransform(
	selected []*domain.GeneratedImage,
	transform domain.TransformType,
	base domain.JobConfig,
) ([]domain.JobDescriptor, error) {
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	descs := make([]domain.JobDescriptor, 0, len(selected))
	for _, entry := range selected {
		desc := base.Clone()
		desc.Prompt = entry.Prompt
		desc.Seed = domain.NewSeed()
		desc.IsEditing = true
		desc.Resolution = entry.Resolution
		desc.PrintSize = entry.PrintSize
		desc.ReferenceImages = []string{entry.URL}
		desc.TransformType = transform

		switch transform {
		case domain.TransformColorize:
			desc.ColorMode = domain.ColorModeColor
		case domain.TransformDecolorize:
			desc.ColorMode = domain.ColorModeBW
		}

		descs = append(descs, desc)
	}

	return descs, nil
}

// storedPromptFor returns the prompt recorded on the new history entry. The
// transform prefixes make the derived entry's origin visible; the display
// prompt deliberately differs from the descriptor's.
func storedPromptFor(desc domain.JobDescriptor) string {
	switch desc.TransformType {
	case domain.TransformColorize:
		return colorizePrefix + desc.Prompt
	case domain.TransformDecolorize:
		return decolorizePrefix + desc.Prompt
	default:
		return desc.Prompt
	}
}

// BatchEdit plans and runs an edit batch over the selected entries.
func (s *Service) BatchEdit(ctx context.Context, sess *task.Session, selected []*domain.GeneratedImage, instruction string, base domain.JobConfig) error {
	descs, err := PlanBatchEdit(selected, instruction, base)
	if err != nil {
		return err
	}
	s.runBatch(ctx, sess, "batch_edit", s.thunksFor(sess, descs))
	return nil
}

// BatchUpscale plans and runs an upscale batch over the selected entries.
func (s *Service) BatchUpscale(ctx context.Context, sess *task.Session, selected []*domain.GeneratedImage, targetResolution string, base domain.JobConfig) error {
	descs, err := PlanBatchUpscale(selected, targetResolution, base)
	if err != nil {
		return err
	}
	s.runBatch(ctx, sess, "batch_upscale", s.thunksFor(sess, descs))
	return nil
}

// BatchColorize plans and runs a colorize batch over the selected entries.
func (s *Service) BatchColorize(ctx context.Context, sess *task.Session, selected []*domain.GeneratedImage, base domain.JobConfig) error {
	descs, err := PlanBatchTransform(selected, domain.TransformColorize, base)
	if err != nil {
		return err
	}
	s.runBatch(ctx, sess, "batch_colorize", s.thunksFor(sess, descs))
	return nil
}

// BatchDecolorize plans and runs a decolorize batch over the selected entries.
func (s *Service) BatchDecolorize(ctx context.Context, sess *task.Session, selected []*domain.GeneratedImage, base domain.JobConfig) error {
	descs, err := PlanBatchTransform(selected, domain.TransformDecolorize, base)
	if err != nil {
		return err
	}
	s.runBatch(ctx, sess, "batch_decolorize", s.thunksFor(sess, descs))
	return nil
}

// thunksFor wraps descriptors in the standard execute-then-persist thunk,
// applying any transform prefix to the stored prompt.
func (s *Service) thunksFor(sess *task.Session, descs []domain.JobDescriptor) []task.Thunk {
	thunks := make([]task.Thunk, len(descs))
	for i, desc := range descs {
		thunks[i] = s.generateThunk(sess, desc, storedPromptFor(desc))
	}
	return thunks
}
