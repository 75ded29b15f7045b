package model

import (
	"strings"
	"time"
)

// Priority is the urgency label of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used whenever a priority is absent.
const DefaultPriority = PriorityMedium

// DefaultStatus is the status of a freshly created task.
const DefaultStatus = "todo"

// IsValid reports whether p is one of the three known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// OrDefault returns p, or DefaultPriority when p is empty or unknown.
func (p Priority) OrDefault() Priority {
	if p.IsValid() {
		return p
	}
	return DefaultPriority
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority parses s case-insensitively. ok is false for empty or unknown values.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// Task is a persisted task row.
type Task struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    Priority
	Status      string
	CreatedAt   time.Time
}
