package mocks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
)

func TestMockGeneratorTracksCalls(t *testing.T) {
	m := NewMockGeneratorWithDefaultResult()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Generate(context.Background(), domain.GenerationRequest{GameTitle: "Hades"})
		}()
	}
	wg.Wait()

	if got := m.GenerateCallCount(); got != 10 {
		t.Fatalf("expected 10 calls, got %d", got)
	}
	last, ok := m.LastRequest()
	if !ok || last.GameTitle != "Hades" {
		t.Errorf("unexpected last request: %+v", last)
	}

	m.Reset()
	if m.GenerateCallCount() != 0 {
		t.Error("expected reset to clear calls")
	}
}

func TestMockGeneratorFn(t *testing.T) {
	want := errors.New("custom")
	m := &MockGenerator{
		GenerateFn: func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
			return nil, want
		},
	}
	if _, err := m.Generate(context.Background(), domain.GenerationRequest{}); !errors.Is(err, want) {
		t.Errorf("expected custom error, got %v", err)
	}
}

func TestMockGeneratorErrors(t *testing.T) {
	_, err := MockGeneratorNeedingFunding("").Generate(context.Background(), domain.GenerationRequest{})
	if !errors.Is(err, generation.ErrFundingRequired) {
		t.Errorf("expected funding error, got %v", err)
	}

	_, err = MockGeneratorThatFails("socket hang up").Generate(context.Background(), domain.GenerationRequest{})
	if !errors.Is(err, generation.ErrGenerationFailed) || err.Error() != "socket hang up" {
		t.Errorf("expected failed error with message, got %v", err)
	}
}
