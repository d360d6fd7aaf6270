package web

import (
	"context"
	"errors"
	"sync"

	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
)

// ErrBusy is returned by Submit while a previous submission is still loading.
var ErrBusy = errors.New("a generation is already in progress for this form")

// Status is the phase of a form's generation lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is an immutable view of a Controller. Result is set only in
// StatusSuccess and Err only in StatusFailed.
type Snapshot struct {
	Status Status
	Result *domain.GenerationResult
	Err    error
}

// Controller holds the loading/result/error state of one form instance and
// moves it through idle, loading, then success or failed.
type Controller struct {
	generator generation.Generator

	mu    sync.Mutex
	state Snapshot
}

// NewController creates an idle Controller backed by generator.
func NewController(generator generation.Generator) *Controller {
	return &Controller{generator: generator}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one generation. It returns ErrBusy without calling the
// generator if another submission is loading; otherwise it returns the
// terminal snapshot together with the generation error, if any.
func (c *Controller) Submit(ctx context.Context, req domain.GenerationRequest) (Snapshot, error) {
	c.mu.Lock()
	if c.state.Status == StatusLoading {
		c.mu.Unlock()
		return Snapshot{}, ErrBusy
	}
	c.state = Snapshot{Status: StatusLoading}
	c.mu.Unlock()

	result, err := c.generator.Generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.state = Snapshot{Status: StatusFailed, Err: err}
	case result == nil:
		c.state = Snapshot{Status: StatusSuccess, Result: &domain.GenerationResult{}}
	default:
		c.state = Snapshot{Status: StatusSuccess, Result: result}
	}
	return c.state, err
}
