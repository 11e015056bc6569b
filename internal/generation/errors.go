package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when image generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate image")

	// ErrInvalidResponse is returned when the model response has no usable image data
	ErrInvalidResponse = errors.New("invalid response from image model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by image model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
