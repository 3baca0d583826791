package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"codecampus/internal/domain/platform"
	"codecampus/internal/infrastructure/config"
	"codecampus/internal/interfaces/http/handlers"
	"codecampus/internal/interfaces/http/middleware"
	"codecampus/internal/interfaces/http/routes"
	"codecampus/internal/shared/logger"
)

// Router assembles the gin engine with all middleware and routes.
type Router struct {
	cfg             *config.Config
	redisClient     *redis.Client
	platformHandler *handlers.PlatformHandler
	userHandler     *handlers.UserHandler
	taskHandler     *handlers.TaskHandler
	logger          logger.Interface
}

// NewRouter creates a new router
func NewRouter(
	cfg *config.Config,
	redisClient *redis.Client,
	platformHandler *handlers.PlatformHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	log logger.Interface,
) *Router {
	return &Router{
		cfg:             cfg,
		redisClient:     redisClient,
		platformHandler: platformHandler,
		userHandler:     userHandler,
		taskHandler:     taskHandler,
		logger:          log,
	}
}

// Setup builds the gin engine.
func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCustomValidators()

	engine := gin.New()
	engine.Use(middleware.Recovery(r.logger))
	engine.Use(middleware.Logger(r.logger))
	engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	if r.cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			r.redisClient,
			r.cfg.RateLimit.Requests,
			time.Duration(r.cfg.RateLimit.WindowSeconds)*time.Second,
		)
		engine.Use(limiter.Limit())
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	routes.RegisterPlatformRoutes(api, r.platformHandler)
	routes.RegisterUserRoutes(api, r.userHandler)
	routes.RegisterTaskRoutes(api, r.taskHandler)

	return engine
}

// registerCustomValidators adds the platform binding tag used by request
// structs.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		_, err := platform.Parse(fl.Field().String())
		return err == nil
	})
}
