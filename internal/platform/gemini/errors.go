package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrNoImageData is returned when a model response carries no inline
	// image part.
	ErrNoImageData = errors.New("model response contained no image data")

	// ErrBadDataURI is returned when a reference image is not a valid
	// base64 data URI.
	ErrBadDataURI = errors.New("reference image is not a valid data URI")
)
