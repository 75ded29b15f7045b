package usecase

import (
	"context"
	"strings"

	"task-assistant/internal/assistant"
	"task-assistant/internal/task"
)

// Parse turns free text into a draft without persisting it.
func (uc *implUseCase) Parse(ctx context.Context, text string) (task.ParseOutput, error) {
	if strings.TrimSpace(text) == "" {
		return task.ParseOutput{}, task.ErrEmptyText
	}
	return task.ParseOutput{Draft: uc.assistant.Parse(ctx, text)}, nil
}

// CreateFromText parses free text and persists the resulting task.
func (uc *implUseCase) CreateFromText(ctx context.Context, text string) (task.CreateFromTextOutput, error) {
	if strings.TrimSpace(text) == "" {
		return task.CreateFromTextOutput{}, task.ErrEmptyText
	}

	draft := uc.assistant.Parse(ctx, text)
	t, err := uc.createFromDraft(ctx, draft)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromText createFromDraft: %v", err)
		return task.CreateFromTextOutput{}, err
	}
	return task.CreateFromTextOutput{Task: t, Draft: draft}, nil
}

// SuggestPriority suggests a priority for an existing task.
func (uc *implUseCase) SuggestPriority(ctx context.Context, id int64) (task.SuggestPriorityOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.SuggestPriorityOutput{}, err
	}
	return task.SuggestPriorityOutput{
		TaskID:     t.ID,
		Suggestion: uc.assistant.SuggestPriority(ctx, assistant.SnapshotFromTask(t)),
	}, nil
}

// SuggestSchedule suggests a work window for an existing task.
func (uc *implUseCase) SuggestSchedule(ctx context.Context, id int64) (task.SuggestScheduleOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.SuggestScheduleOutput{}, err
	}
	return task.SuggestScheduleOutput{
		TaskID:     t.ID,
		Suggestion: uc.assistant.SuggestSchedule(ctx, assistant.SnapshotFromTask(t)),
	}, nil
}

// Summarize renders a one-line summary of an existing task.
func (uc *implUseCase) Summarize(ctx context.Context, id int64) (task.SummaryOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.SummaryOutput{}, err
	}
	return task.SummaryOutput{
		TaskID:  t.ID,
		Summary: uc.assistant.Summarize(ctx, assistant.SnapshotFromTask(t)),
	}, nil
}
