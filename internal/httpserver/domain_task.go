package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-assistant/internal/task/delivery/http"
	taskRepo "task-assistant/internal/task/repository/sqldb"
	taskUC "task-assistant/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.assistant, taskUC.WithAgenticBehavior(srv.enableAgenticBehavior))

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/tasks, /api/v1/agent
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered (assistant mode: %s, agentic: %t)", srv.assistant.Mode(), srv.enableAgenticBehavior)
	return nil
}
