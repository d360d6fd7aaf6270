package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
)

// InstrumentedGenerator records outcome and latency of every generation.
type InstrumentedGenerator struct {
	next    generation.Generator
	metrics *Metrics
}

// NewInstrumentedGenerator wraps next with metrics.
func NewInstrumentedGenerator(next generation.Generator, m *Metrics) *InstrumentedGenerator {
	return &InstrumentedGenerator{next: next, metrics: m}
}

// Generate implements generation.Generator.
func (g *InstrumentedGenerator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	start := time.Now()
	result, err := g.next.Generate(ctx, req)
	g.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	g.metrics.GenerationsTotal.WithLabelValues(Outcome(err)).Inc()
	if err == nil && result != nil {
		g.metrics.GeneratedTitles.Observe(float64(len(result.Titles)))
	}
	return result, err
}

// Outcome maps a generation error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, generation.ErrFundingRequired):
		return OutcomeFundingRequired
	case errors.Is(err, domain.ErrValidation):
		return OutcomeInvalidRequest
	default:
		return OutcomeGenerationFailed
	}
}
