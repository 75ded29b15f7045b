package usecase

import (
	"context"

	"task-assistant/internal/assistant"
	"task-assistant/internal/assistant/local"
)

// Parse turns free text into a draft.
func (uc *implUseCase) Parse(ctx context.Context, text string) assistant.TaskDraft {
	if uc.mode == assistant.ModeExternalPreferred {
		extCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		draft, err := uc.external.ParseFreeText(extCtx, text)
		cancel()
		if err == nil {
			return draft
		}
		uc.l.Warnf(ctx, "assistant.usecase.Parse: external engine failed, using local rules: %v", err)
	}

	// Local rules never fail and ignore ctx.
	draft, _ := uc.local.ParseFreeText(context.WithoutCancel(ctx), text)
	return draft
}

// SuggestPriority suggests a priority for the task.
func (uc *implUseCase) SuggestPriority(ctx context.Context, snap assistant.TaskSnapshot) assistant.PrioritySuggestion {
	if uc.mode == assistant.ModeExternalPreferred {
		extCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		sug, err := uc.external.ClassifyPriority(extCtx, snap)
		cancel()
		if err == nil {
			return sug
		}
		uc.l.Warnf(ctx, "assistant.usecase.SuggestPriority: external engine failed, using local rules: %v", err)
	}

	sug, _ := uc.local.ClassifyPriority(context.WithoutCancel(ctx), snap)
	return sug
}

// SuggestSchedule suggests a work window for the task.
func (uc *implUseCase) SuggestSchedule(ctx context.Context, snap assistant.TaskSnapshot) assistant.ScheduleSuggestion {
	if uc.mode == assistant.ModeExternalPreferred {
		extCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		sug, err := uc.external.PlanSchedule(extCtx, snap)
		cancel()
		if err == nil {
			return sug
		}
		uc.l.Warnf(ctx, "assistant.usecase.SuggestSchedule: external engine failed, using local rules: %v", err)
	}

	sug, _ := uc.local.PlanSchedule(context.WithoutCancel(ctx), snap)
	return sug
}

// Summarize renders a one-line summary. It always uses local rules.
func (uc *implUseCase) Summarize(ctx context.Context, snap assistant.TaskSnapshot) string {
	return local.Summarize(snap)
}
