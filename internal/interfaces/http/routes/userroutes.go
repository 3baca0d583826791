package routes

import (
	"github.com/gin-gonic/gin"

	"codecampus/internal/interfaces/http/handlers"
	"codecampus/internal/interfaces/http/middleware"
)

// RegisterUserRoutes registers user identity, profile and visibility routes.
func RegisterUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	users := api.Group("/users")
	users.Use(middleware.RequireIdentity())
	{
		users.POST("/sync", h.Sync)
		users.GET("/me", h.GetProfile)
		users.PUT("/me", h.UpdateProfile)
		users.GET("/me/visibility", h.GetVisibility)
		users.PUT("/me/visibility", h.SetVisibility)
		users.GET("/me/role", h.GetRole)
	}
}
