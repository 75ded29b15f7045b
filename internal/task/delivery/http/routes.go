package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/suggest", h.SuggestPriority)
		tasks.POST("/:id/schedule", h.SuggestSchedule)
		tasks.GET("/:id/summary", h.Summary)
	}

	agent := rg.Group("/agent")
	{
		agent.POST("/chat", h.Chat)
	}
}
