package domain

import (
	"errors"
	"testing"
)

func TestNewSeed(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		seed := NewSeed()
		if seed < 0 || seed >= 1<<32 {
			t.Fatalf("Expected seed in 32-bit range, got %d", seed)
		}
	}
}

func TestJobConfigValidate(t *testing.T) {
	t.Parallel()

	valid := JobConfig{
		Prompt:     "a cat in a garden",
		PrintSize:  "A4",
		Seed:       NewSeed(),
		StyleID:    "classic",
		ColorMode:  ColorModeBW,
		Resolution: "1k",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	empty := valid
	empty.Prompt = ""
	if err := empty.Validate(); !errors.Is(err, ErrJobPromptEmpty) {
		t.Errorf("Expected error %v, got %v", ErrJobPromptEmpty, err)
	}

	badMode := valid
	badMode.ColorMode = "sepia"
	if err := badMode.Validate(); !errors.Is(err, ErrJobColorModeInvalid) {
		t.Errorf("Expected error %v, got %v", ErrJobColorModeInvalid, err)
	}

	badTransform := valid
	badTransform.TransformType = "sharpen"
	if err := badTransform.Validate(); !errors.Is(err, ErrJobTransformInvalid) {
		t.Errorf("Expected error %v, got %v", ErrJobTransformInvalid, err)
	}
}

func TestJobConfigClone(t *testing.T) {
	t.Parallel()

	original := JobConfig{
		Prompt:          "a fox",
		ColorMode:       ColorModeColor,
		ReferenceImages: []string{"data:image/png;base64,AAAA"},
	}

	clone := original.Clone()

	if len(clone.ReferenceImages) != 1 {
		t.Fatalf("Expected 1 reference image, got %d", len(clone.ReferenceImages))
	}

	// Mutating the clone's slice must not reach back into the original.
	clone.ReferenceImages[0] = "data:image/png;base64,BBBB"
	if original.ReferenceImages[0] != "data:image/png;base64,AAAA" {
		t.Error("Expected original reference images to be unchanged after clone mutation")
	}
}
