package routes

import (
	"github.com/gin-gonic/gin"

	"codecampus/internal/interfaces/http/handlers"
	"codecampus/internal/interfaces/http/middleware"
)

// RegisterTaskRoutes registers task publication, listing and submission
// routes.
func RegisterTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.RequireIdentity())
	{
		tasks.GET("", h.ListForStudent)
		tasks.POST("", h.Create)
		tasks.GET("/published", h.ListForTeacher)
		tasks.POST("/:id/submissions", h.Submit)
		tasks.GET("/:id/submissions", h.ListSubmissions)
	}
}
