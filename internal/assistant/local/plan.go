package local

import (
	"context"
	"fmt"
	"time"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

const (
	workdayStartHour = 9
	slotDuration     = time.Hour

	explainNoDueDate = "No due date; suggest next workday morning."
)

type leadTime struct {
	offset time.Duration
	label  string
}

var leadTimes = map[model.Priority]leadTime{
	model.PriorityHigh:   {offset: 6 * time.Hour, label: "6 hours"},
	model.PriorityMedium: {offset: 24 * time.Hour, label: "24 hours"},
	model.PriorityLow:    {offset: 3 * 24 * time.Hour, label: "3 days"},
}

// PlanSchedule suggests when to start working on a task.
func (e *Engine) PlanSchedule(ctx context.Context, snap assistant.TaskSnapshot) (assistant.ScheduleSuggestion, error) {
	return planSchedule(snap, e.now()), nil
}

func planSchedule(snap assistant.TaskSnapshot, now time.Time) assistant.ScheduleSuggestion {
	if snap.DueDate != nil {
		return planBeforeDue(snap.DueDate.UTC(), snap.Priority.OrDefault(), now)
	}
	return planNextWorkday(now)
}

// planBeforeDue starts a priority-dependent lead time before the due date, never in the past.
func planBeforeDue(due time.Time, priority model.Priority, now time.Time) assistant.ScheduleSuggestion {
	lead := leadTimes[priority]

	start := due.Add(-lead.offset)
	if start.Before(now) {
		start = now
	}

	return assistant.ScheduleSuggestion{
		SuggestedStart: start,
		Explanation:    fmt.Sprintf("Start %s before due date based on priority '%s'.", lead.label, priority),
	}
}

// planNextWorkday picks 09:00 UTC on the first Monday-Friday after today.
func planNextWorkday(now time.Time) assistant.ScheduleSuggestion {
	next := now.AddDate(0, 0, 1)
	start := time.Date(next.Year(), next.Month(), next.Day(), workdayStartHour, 0, 0, 0, time.UTC)
	for start.Weekday() == time.Saturday || start.Weekday() == time.Sunday {
		start = start.AddDate(0, 0, 1)
	}
	end := start.Add(slotDuration)

	return assistant.ScheduleSuggestion{
		SuggestedStart: start,
		SuggestedEnd:   &end,
		Explanation:    explainNoDueDate,
	}
}
