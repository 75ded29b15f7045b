package repository

import (
	"time"

	"task-assistant/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Status      string
	CreatedAt   time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID int64
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Status   string
	Priority model.Priority
	Limit    int
	Offset   int
}

// UpdateTaskOptions holds the full new state of an existing Task.
type UpdateTaskOptions struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    model.Priority
	Status      string
}
