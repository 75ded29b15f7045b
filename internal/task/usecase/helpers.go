package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// validTitle reports whether title is non-blank and within the length limit.
func validTitle(title string) bool {
	return strings.TrimSpace(title) != "" && utf8.RuneCountInString(title) <= assistant.MaxTitleLength
}

// coalesce returns the new value when provided, otherwise the existing one.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// getTask loads a task or returns ErrTaskNotFound.
func (uc *implUseCase) getTask(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// createFromDraft persists a parsed draft with default priority and status.
func (uc *implUseCase) createFromDraft(ctx context.Context, draft assistant.TaskDraft) (model.Task, error) {
	priority := model.DefaultPriority
	if draft.Priority != nil {
		priority = draft.Priority.OrDefault()
	}

	return uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       draft.Title,
		Description: truncateDescription(draft.Description),
		DueDate:     draft.DueDate,
		Priority:    priority,
		Status:      model.DefaultStatus,
		CreatedAt:   uc.clock(),
	})
}

// truncateDescription caps a parsed description at MaxDescriptionLength runes.
func truncateDescription(desc *string) *string {
	if desc == nil || utf8.RuneCountInString(*desc) <= task.MaxDescriptionLength {
		return desc
	}
	cut := string([]rune(*desc)[:task.MaxDescriptionLength])
	return &cut
}
