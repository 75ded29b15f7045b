package external

import (
	"context"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
)

// Generator is the part of llmprovider.Manager the adapter needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Adapter implements assistant.Engine by prompting a language model for JSON.
type Adapter struct {
	l     log.Logger
	llm   Generator
	clock func() time.Time
}

var _ assistant.Engine = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithClock overrides the time source used to anchor relative dates in prompts.
func WithClock(clock func() time.Time) Option {
	return func(a *Adapter) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// New creates an external engine backed by llm.
func New(l log.Logger, llm Generator, opts ...Option) *Adapter {
	a := &Adapter{
		l:     l,
		llm:   llm,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) now() time.Time {
	return a.clock().UTC()
}
