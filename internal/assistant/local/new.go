package local

import (
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/pkg/datemath"
)

// Engine is the deterministic rule engine behind every assistant operation.
// It holds no mutable state; "now" is read once per call from the clock.
type Engine struct {
	clock func() time.Time
	dates *datemath.Parser
}

var _ assistant.Engine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source. Tests use it to pin "now".
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// New creates a local Engine that evaluates everything in UTC.
func New(opts ...Option) *Engine {
	// "UTC" never needs the tz database.
	dates, _ := datemath.NewParser("UTC")

	e := &Engine{
		clock: time.Now,
		dates: dates,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) now() time.Time {
	return e.clock().UTC()
}
