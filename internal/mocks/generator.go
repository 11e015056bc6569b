package mocks

import (
	"context"
	"sync"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior.
	GenerateFn func(ctx context.Context, desc domain.JobDescriptor) (*generation.Result, error)

	// Default response values used when GenerateFn is nil.
	Result *generation.Result
	Err    error

	// Call tracking for verification.
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Generate was called
		Count int

		// Descriptors contains every descriptor passed to Generate
		Descriptors []domain.JobDescriptor
	}
}

// Generate implements the generation.Generator interface.
func (m *MockGenerator) Generate(
	ctx context.Context,
	desc domain.JobDescriptor,
) (*generation.Result, error) {
	m.Calls.mu.Lock()
	m.Calls.Count++
	m.Calls.Descriptors = append(m.Calls.Descriptors, desc.Clone())
	m.Calls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, desc)
	}

	return m.Result, m.Err
}

// CallCount returns how many attempts the generator has served.
func (m *MockGenerator) CallCount() int {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	return m.Calls.Count
}

// Descriptors returns a copy of every descriptor seen so far.
func (m *MockGenerator) Descriptors() []domain.JobDescriptor {
	m.Calls.mu.Lock()
	defer m.Calls.mu.Unlock()
	out := make([]domain.JobDescriptor, len(m.Calls.Descriptors))
	copy(out, m.Calls.Descriptors)
	return out
}

// NewMockGeneratorWithResult creates a MockGenerator that always succeeds
// with the given artifact and model name.
func NewMockGeneratorWithResult(content, usedModel string) *MockGenerator {
	return &MockGenerator{
		Result: &generation.Result{Content: content, UsedModel: usedModel},
	}
}

// NewMockGeneratorWithError creates a MockGenerator that always fails with
// the specified error.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// Interface conformance check
var _ generation.Generator = (*MockGenerator)(nil)
