package local

import (
	"context"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

const (
	explainDueWithinDay     = "Due within 24 hours."
	explainDueWithinDays    = "Due within 3 days."
	explainDueNotImminent   = "Due date is not imminent."
	explainDefaultPriority  = "Default suggestion."
	confidenceDueWithinDay  = 0.9
	confidenceDueWithinDays = 0.7
	confidenceNotImminent   = 0.6
	confidenceDefault       = 0.5
)

// ClassifyPriority suggests a priority from how close the due date is.
// Rules are checked most urgent first; the first match wins.
func (e *Engine) ClassifyPriority(ctx context.Context, snap assistant.TaskSnapshot) (assistant.PrioritySuggestion, error) {
	return classifyPriority(snap, e.now()), nil
}

func classifyPriority(snap assistant.TaskSnapshot, now time.Time) assistant.PrioritySuggestion {
	if snap.DueDate == nil {
		return assistant.PrioritySuggestion{
			Priority:    model.PriorityMedium,
			Confidence:  confidenceDefault,
			Explanation: explainDefaultPriority,
		}
	}

	left := snap.DueDate.UTC().Sub(now)
	switch {
	case left <= 24*time.Hour:
		return assistant.PrioritySuggestion{
			Priority:    model.PriorityHigh,
			Confidence:  confidenceDueWithinDay,
			Explanation: explainDueWithinDay,
		}
	case left <= 3*24*time.Hour:
		return assistant.PrioritySuggestion{
			Priority:    model.PriorityHigh,
			Confidence:  confidenceDueWithinDays,
			Explanation: explainDueWithinDays,
		}
	default:
		return assistant.PrioritySuggestion{
			Priority:    model.PriorityMedium,
			Confidence:  confidenceNotImminent,
			Explanation: explainDueNotImminent,
		}
	}
}
