package routes

import (
	"github.com/gin-gonic/gin"

	"codecampus/internal/interfaces/http/handlers"
	"codecampus/internal/interfaces/http/middleware"
)

// RegisterPlatformRoutes registers platform connection, sync, leaderboard
// and dashboard routes. The leaderboard is public; everything else needs an
// asserted identity.
func RegisterPlatformRoutes(api *gin.RouterGroup, h *handlers.PlatformHandler) {
	api.GET("/leaderboard", h.Leaderboard)

	platforms := api.Group("/platforms")
	platforms.Use(middleware.RequireIdentity())
	{
		platforms.GET("", h.List)
		platforms.POST("/connect", h.Connect)
		platforms.POST("/sync", h.Sync)
		platforms.PUT("/handles", h.UpdateHandles)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.RequireIdentity())
	{
		dashboard.GET("", h.Dashboard)
	}
}
