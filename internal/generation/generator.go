package generation

import (
	"context"

	"github.com/phrazzld/jtube/internal/domain"
)

// Generator defines the interface for generating SEO content for a game video.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// Generate makes exactly one call to the underlying model and returns the
	// parsed result. Errors satisfy errors.Is with either ErrFundingRequired or
	// ErrGenerationFailed. No partial result is returned alongside an error.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}
