package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)

	// Default response values
	Result *domain.GenerationResult
	Err    error

	// Call tracking for verification
	mu       sync.Mutex
	requests []domain.GenerationRequest
}

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	fn, result, err := m.GenerateFn, m.Result, m.Err
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return result, err
}

// GenerateCallCount returns how many times Generate was called
func (m *MockGenerator) GenerateCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of every request passed to Generate
func (m *MockGenerator) Requests() []domain.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.GenerationRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or false when none was made
func (m *MockGenerator) LastRequest() (domain.GenerationRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.GenerationRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// Reset clears the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
}

// NewMockGeneratorWithResult creates a MockGenerator that returns result
func NewMockGeneratorWithResult(result *domain.GenerationResult) *MockGenerator {
	return &MockGenerator{Result: result}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// NewMockGeneratorWithDefaultResult creates a MockGenerator with a sample result
func NewMockGeneratorWithDefaultResult() *MockGenerator {
	return &MockGenerator{
		Result: &domain.GenerationResult{
			Titles: []string{
				"Elden Ring - Full Walkthrough Part 1 (No Commentary)",
				"Elden Ring Gameplay: Limgrave Exploration",
			},
			Description: "Join the adventure through the Lands Between.",
			Tags:        "elden ring, walkthrough, soulslike",
			GroundingSources: []domain.GroundingSource{
				{Title: "Elden Ring Wiki", URI: "https://eldenring.wiki.fextralife.com"},
			},
		},
	}
}

// MockGeneratorNeedingFunding creates a MockGenerator that simulates an unusable credential
func MockGeneratorNeedingFunding(donationURL string) *MockGenerator {
	return &MockGenerator{Err: generation.NewFundingError(donationURL)}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a provider failure
func MockGeneratorThatFails(message string) *MockGenerator {
	return &MockGenerator{Err: &generation.FailedError{Message: message}}
}
