package usecase

import (
	"context"
	"time"

	"task-assistant/config"
	"task-assistant/internal/assistant/external"
	"task-assistant/internal/assistant/local"
	"task-assistant/pkg/llmprovider"
	pkgLog "task-assistant/pkg/log"
)

// NewFromConfig selects the assistant strategy from configuration. When the LLM layer is
// disabled or no provider initializes, the result runs local-only.
func NewFromConfig(ctx context.Context, l pkgLog.Logger, cfg config.LLMConfig, opts ...local.Option) *implUseCase {
	localEngine := local.New(opts...)

	if !cfg.Enabled {
		l.Infof(ctx, "assistant: LLM disabled, using local heuristics")
		return New(l, localEngine, nil, 0)
	}

	providers, err := llmprovider.InitializeProviders(&cfg, l)
	if err != nil {
		l.Warnf(ctx, "assistant: no usable LLM provider, using local heuristics: %v", err)
		return New(l, localEngine, nil, 0)
	}

	// One attempt per provider: a failed call falls back to the next provider, then to local.
	managerCfg := llmprovider.NewConfig(&cfg)
	managerCfg.RetryAttempts = 1
	manager := llmprovider.NewManager(providers, managerCfg, l)
	for _, p := range manager.Providers() {
		l.Infof(ctx, "assistant: LLM provider %s (%s) ready", p.Name(), p.Model())
	}

	return New(l, localEngine, external.New(l, manager), parseTimeout(cfg.Timeout))
}

// parseTimeout returns 0 (use DefaultExternalTimeout) for empty or malformed values.
func parseTimeout(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}
