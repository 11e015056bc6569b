package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewGeneratedImage(t *testing.T) {
	t.Parallel()

	img, err := NewGeneratedImage("data:image/png;base64,AAAA", "a cat", "1k", "A4")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if img.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if img.Timestamp.IsZero() {
		t.Error("Expected non-zero Timestamp")
	}

	if img.Resolution != "1k" || img.PrintSize != "A4" {
		t.Errorf("Expected resolution/print size to be retained, got %q/%q", img.Resolution, img.PrintSize)
	}

	// Missing artifact
	if _, err := NewGeneratedImage("", "a cat", "1k", "A4"); err != ErrImageURLEmpty {
		t.Errorf("Expected error %v, got %v", ErrImageURLEmpty, err)
	}

	// Missing prompt
	if _, err := NewGeneratedImage("data:image/png;base64,AAAA", "", "1k", "A4"); err != ErrImagePromptEmpty {
		t.Errorf("Expected error %v, got %v", ErrImagePromptEmpty, err)
	}
}
