package domain

import (
	"errors"
	"math/rand"
)

// Job-specific validation errors
var (
	// ErrJobPromptEmpty is returned when a job's prompt is empty.
	ErrJobPromptEmpty = errors.New("job prompt cannot be empty")

	// ErrJobColorModeInvalid is returned when a job's color mode is not recognized.
	ErrJobColorModeInvalid = errors.New("job color mode must be color or bw")

	// ErrJobTransformInvalid is returned when a job's transform type is not recognized.
	ErrJobTransformInvalid = errors.New("job transform type must be colorize or decolorize")
)

// ColorMode selects between full-color and black-and-white line art output.
type ColorMode string

// Possible color mode values
const (
	ColorModeColor ColorMode = "color"
	ColorModeBW    ColorMode = "bw"
)

// TransformType marks a job that reworks an existing image rather than
// generating a fresh one. An empty value means no transform.
type TransformType string

// Possible transform type values
const (
	TransformNone       TransformType = ""
	TransformColorize   TransformType = "colorize"
	TransformDecolorize TransformType = "decolorize"
)

// JobConfig is the frozen parameter set for one generation job. A planner
// creates one per task; the executor consumes it exactly once. A FailedJob
// snapshots the same shape (seed included) so a retry replays it faithfully.
type JobConfig struct {
	Prompt          string        `json:"prompt"`
	PrintSize       string        `json:"print_size"`
	Seed            int64         `json:"seed"`
	StyleID         string        `json:"style_id"`
	ColorMode       ColorMode     `json:"color_mode"`
	Resolution      string        `json:"resolution"`
	UseFrame        bool          `json:"use_frame"`
	FrameStyle      string        `json:"frame_style"`
	ReferenceImages []string      `json:"reference_images,omitempty"`
	IsEditing       bool          `json:"is_editing"`
	TransformType   TransformType `json:"transform_type,omitempty"`
	PaletteID       string        `json:"palette_id,omitempty"`
}

// JobDescriptor is an alias that names the per-attempt role of a JobConfig:
// created fresh by a planner, never mutated, consumed once by the executor.
type JobDescriptor = JobConfig

// NewSeed returns a fresh random seed in the 32-bit range.
func NewSeed() int64 {
	return rand.Int63n(1 << 32)
}

// Clone returns a copy of the config with its own reference image slice, so
// the copy can be frozen into a FailedJob without sharing backing storage.
func (c JobConfig) Clone() JobConfig {
	out := c
	if len(c.ReferenceImages) > 0 {
		out.ReferenceImages = make([]string, len(c.ReferenceImages))
		copy(out.ReferenceImages, c.ReferenceImages)
	}
	return out
}

// Validate checks if the JobConfig has valid data.
// Returns an error if any field fails validation.
func (c JobConfig) Validate() error {
	if c.Prompt == "" {
		return ErrJobPromptEmpty
	}

	switch c.ColorMode {
	case ColorModeColor, ColorModeBW:
	default:
		return ErrJobColorModeInvalid
	}

	switch c.TransformType {
	case TransformNone, TransformColorize, TransformDecolorize:
	default:
		return ErrJobTransformInvalid
	}

	return nil
}
