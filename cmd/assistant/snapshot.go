package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

var errTitleRequired = errors.New("--title is required")

// snapshotFlags describe an existing task on the command line.
type snapshotFlags struct {
	title       string
	description string
	due         string
	priority    string
	status      string
}

func (f *snapshotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "task title")
	cmd.Flags().StringVar(&f.description, "description", "", "task description")
	cmd.Flags().StringVar(&f.due, "due", "", "due date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "current priority (high, medium, low)")
	cmd.Flags().StringVar(&f.status, "status", model.DefaultStatus, "current status")
}

func (f snapshotFlags) snapshot() (assistant.TaskSnapshot, error) {
	title := strings.TrimSpace(f.title)
	if title == "" {
		return assistant.TaskSnapshot{}, errTitleRequired
	}

	snap := assistant.TaskSnapshot{
		Title:    title,
		Priority: model.DefaultPriority,
		Status:   f.status,
	}

	if f.description != "" {
		d := f.description
		snap.Description = &d
	}

	if f.priority != "" {
		p, ok := model.ParsePriority(f.priority)
		if !ok {
			return assistant.TaskSnapshot{}, fmt.Errorf("invalid --priority %q", f.priority)
		}
		snap.Priority = p
	}

	if f.due != "" {
		due, err := parseDue(f.due)
		if err != nil {
			return assistant.TaskSnapshot{}, err
		}
		snap.DueDate = &due
	}

	return snap, nil
}

func parseDue(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --due %q: want RFC3339 or YYYY-MM-DD", s)
}
