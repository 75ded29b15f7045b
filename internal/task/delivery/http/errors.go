package http

import (
	"errors"
	"net/http"

	"task-assistant/internal/task"
	pkgErrors "task-assistant/pkg/errors"
)

var (
	errInvalidID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be RFC3339 or YYYY-MM-DD")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrInvalidTitle),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrEmptyText),
		errors.Is(err, task.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// bindError wraps a binding/validation failure as a 400.
func bindError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
