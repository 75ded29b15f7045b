package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTitle    = errors.New("title is required and must be at most 100 characters")
	ErrInvalidPriority = errors.New("priority must be one of high, medium, low")
	ErrEmptyText       = errors.New("text is required")
	ErrEmptyMessage    = errors.New("message is required")
)
