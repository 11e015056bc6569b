package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Image-specific validation errors
var (
	// ErrImageIDEmpty is returned when an image ID is empty or nil.
	ErrImageIDEmpty = errors.New("image ID cannot be empty")

	// ErrImageURLEmpty is returned when an image has no output artifact.
	ErrImageURLEmpty = errors.New("image URL cannot be empty")

	// ErrImagePromptEmpty is returned when an image's prompt is empty.
	ErrImagePromptEmpty = errors.New("image prompt cannot be empty")
)

// GeneratedImage is one history entry: the output artifact of a successful
// job. It keeps only prompt, resolution and print size from the descriptor
// that produced it; the rest of the descriptor is not retained.
type GeneratedImage struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Prompt     string    `json:"prompt"`
	Timestamp  time.Time `json:"timestamp"`
	Resolution string    `json:"resolution"`
	PrintSize  string    `json:"print_size"`
}

// NewGeneratedImage creates a new history entry for a successful job outcome.
// It generates a new UUID for the entry and stamps the current time.
// Returns an error if validation fails.
func NewGeneratedImage(url, prompt, resolution, printSize string) (*GeneratedImage, error) {
	img := &GeneratedImage{
		ID:         uuid.New(),
		URL:        url,
		Prompt:     prompt,
		Timestamp:  time.Now().UTC(),
		Resolution: resolution,
		PrintSize:  printSize,
	}

	if err := img.Validate(); err != nil {
		return nil, err
	}

	return img, nil
}

// Validate checks if the GeneratedImage has valid data.
// Returns an error if any field fails validation.
func (i *GeneratedImage) Validate() error {
	if i.ID == uuid.Nil {
		return ErrImageIDEmpty
	}

	if i.URL == "" {
		return ErrImageURLEmpty
	}

	if i.Prompt == "" {
		return ErrImagePromptEmpty
	}

	return nil
}
