package sqldb

import (
	"context"
	"fmt"

	"task-assistant/internal/task/repository"
	"task-assistant/pkg/log"
	pkgSQL "task-assistant/pkg/sqldb"
)

type implRepository struct {
	db *pkgSQL.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for the task domain (SQLite or PostgreSQL).
func New(db *pkgSQL.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Ping checks the database connection.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqldb.%s", method)
}
