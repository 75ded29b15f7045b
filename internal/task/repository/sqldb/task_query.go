package sqldb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

const taskColumns = `id, title, description, due_date, priority, status, created_at`

// Timestamps are stored as RFC3339 text so both dialects behave the same.
const timestampLayout = time.RFC3339Nano

// buildFilter builds the WHERE clause + args shared by the count and page queries.
func (r *implRepository) buildFilter(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(opt.Priority))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	parts := []string{"WHERE " + where, "ORDER BY id ASC"}

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		desc      sql.NullString
		due       sql.NullString
		priority  string
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.Title, &desc, &due, &priority, &t.Status, &createdAt); err != nil {
		return model.Task{}, err
	}

	if desc.Valid {
		d := desc.String
		t.Description = &d
	}
	if due.Valid && due.String != "" {
		d, err := time.Parse(timestampLayout, due.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("parse due_date %q: %w", due.String, err)
		}
		d = d.UTC()
		t.DueDate = &d
	}
	t.Priority = model.Priority(priority).OrDefault()

	created, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	t.CreatedAt = created.UTC()

	return t, nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timestampLayout)
}
