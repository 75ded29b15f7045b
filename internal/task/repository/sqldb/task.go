package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"task-assistant/internal/model"
	repo "task-assistant/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := r.db.Rebind(`
		INSERT INTO tasks (title, description, due_date, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title,
		nullableString(opt.Description),
		nullableTime(opt.DueDate),
		string(opt.Priority),
		opt.Status,
		createdAt.UTC().Format(timestampLayout),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == 0) when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := r.db.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = ? LIMIT 1`)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a page of Tasks ordered by ID and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	where, countArgs := r.buildFilter(opt)
	var total int
	countQuery := r.db.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where))
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := r.db.Rebind(fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites a Task by ID and returns the updated entity.
// Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := r.db.Rebind(`
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, priority = ?, status = ?
		WHERE id = ?
		RETURNING ` + taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title,
		nullableString(opt.Description),
		nullableTime(opt.DueDate),
		string(opt.Priority),
		opt.Status,
		opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM tasks WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
