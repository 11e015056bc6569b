package generation

import (
	"context"

	"github.com/Hachi2308/coloring/internal/domain"
)

// Result is the outcome of one successful generation attempt.
type Result struct {
	// Content is the output artifact, a base64 data URI.
	Content string

	// UsedModel names the model that actually served the request.
	UsedModel string
}

// Generator defines the interface for producing one image from a job
// descriptor. This interface is the boundary between the scheduling core and
// the external model service.
type Generator interface {
	// Generate performs a single generation attempt for the given descriptor.
	// It returns the output artifact and the model used, or an error whose
	// message follows the remote API's error surface (see Classify).
	Generate(ctx context.Context, desc domain.JobDescriptor) (*Result, error)
}
