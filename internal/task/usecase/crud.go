package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	repo "task-assistant/internal/task/repository"
)

// Create persists a new Task. Priority defaults to medium and status to todo.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if !validTitle(input.Title) {
		return task.CreateOutput{}, task.ErrInvalidTitle
	}

	priority := model.DefaultPriority
	if input.Priority != "" {
		p, ok := model.ParsePriority(string(input.Priority))
		if !ok {
			return task.CreateOutput{}, task.ErrInvalidPriority
		}
		priority = p
	}

	status := input.Status
	if status == "" {
		status = model.DefaultStatus
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Status:      status,
		CreatedAt:   uc.clock(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t}, nil
}

// List returns a page of Tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if input.Priority != "" && !input.Priority.IsValid() {
		return task.ListOutput{}, task.ErrInvalidPriority
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:   input.Status,
		Priority: input.Priority,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (task.DetailOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update modifies an existing Task. Only the provided fields change.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	title := coalesce(input.Title, existing.Title)
	if !validTitle(title) {
		return task.UpdateOutput{}, task.ErrInvalidTitle
	}

	priority := existing.Priority
	if input.Priority != nil {
		p, ok := model.ParsePriority(string(*input.Priority))
		if !ok {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		priority = p
	}

	description := existing.Description
	if input.Description != nil {
		description = input.Description
	}

	due := existing.DueDate
	switch {
	case input.ClearDueDate:
		due = nil
	case input.DueDate != nil:
		due = input.DueDate
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
		Status:      coalesce(input.Status, existing.Status),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == 0 {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.getTask(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
