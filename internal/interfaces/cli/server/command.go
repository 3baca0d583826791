package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	platformUC "codecampus/internal/application/platform/usecases"
	taskUC "codecampus/internal/application/task/usecases"
	userUC "codecampus/internal/application/user/usecases"
	"codecampus/internal/infrastructure/cache"
	"codecampus/internal/infrastructure/config"
	"codecampus/internal/infrastructure/database"
	"codecampus/internal/infrastructure/persistence/models"
	"codecampus/internal/infrastructure/platformfetch"
	"codecampus/internal/infrastructure/repository"
	httpRouter "codecampus/internal/interfaces/http"
	"codecampus/internal/interfaces/http/handlers"
	"codecampus/internal/shared/biztime"
	"codecampus/internal/shared/logger"
)

const leaderboardCacheKey = "leaderboard:weighted"

var (
	env         string
	autoMigrate bool
)

// NewCommand creates the server command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the CodeCampus HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	debugMode := cfg.Server.Mode == "debug"
	if err := logger.Init(&cfg.Logger, debugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Sync.Timezone); err != nil {
		return fmt.Errorf("failed to load business timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production - this is not recommended")
		}
		if err := database.Get().AutoMigrate(
			&models.UserModel{},
			&models.PlatformStatModel{},
			&models.TaskModel{},
			&models.SubmissionModel{},
		); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	pingCancel()
	logger.Info("redis connection established", "addr", cfg.Redis.GetAddr())

	log := logger.NewLogger()

	// Repositories and gateways
	userRepo := repository.NewGormUserRepository(database.Get(), log.Named("userrepo"))
	statRepo := repository.NewGormStatRepository(database.Get(), log.Named("statrepo"))
	taskRepo := repository.NewGormTaskRepository(database.Get(), log.Named("taskrepo"))
	fetchers := platformfetch.NewRegistry(log.Named("fetch"))
	leaderboardCache := cache.NewRedisLeaderboardCache(
		redisClient,
		leaderboardCacheKey,
		time.Duration(cfg.Sync.LeaderboardTTLSeconds)*time.Second,
	)

	// Platform usecases
	connectUC := platformUC.NewConnectPlatformUseCase(userRepo, statRepo, fetchers, log)
	syncUC := platformUC.NewSyncStatsUseCase(userRepo, statRepo, fetchers, cfg.Sync.DailyLimit, log)
	updateHandlesUC := platformUC.NewUpdateHandlesUseCase(userRepo, statRepo, fetchers, log)
	listPlatformsUC := platformUC.NewListPlatformsUseCase(userRepo, statRepo, log)
	leaderboardUC := platformUC.NewGetLeaderboardUseCase(statRepo, leaderboardCache, log)
	dashboardUC := platformUC.NewGetDashboardStatsUseCase(userRepo, statRepo, log)

	// User usecases
	syncUserUC := userUC.NewSyncUserUseCase(userRepo, cfg.Sync.DailyLimit, log)
	getProfileUC := userUC.NewGetProfileUseCase(userRepo, cfg.Sync.DailyLimit, log)
	updateProfileUC := userUC.NewUpdateProfileUseCase(userRepo, cfg.Sync.DailyLimit, log)
	setVisibilityUC := userUC.NewSetVisibilityUseCase(userRepo, log)
	getVisibilityUC := userUC.NewGetVisibilityUseCase(userRepo, log)
	getRoleUC := userUC.NewGetRoleUseCase(userRepo, log)

	// Task usecases
	createTaskUC := taskUC.NewCreateTaskUseCase(userRepo, taskRepo, log)
	listStudentTasksUC := taskUC.NewListStudentTasksUseCase(userRepo, taskRepo, log)
	listTeacherTasksUC := taskUC.NewListTeacherTasksUseCase(userRepo, taskRepo, log)
	submitTaskUC := taskUC.NewSubmitTaskUseCase(userRepo, taskRepo, log)
	listSubmissionsUC := taskUC.NewListSubmissionsUseCase(userRepo, taskRepo, log)

	platformHandler := handlers.NewPlatformHandler(
		connectUC, syncUC, updateHandlesUC, listPlatformsUC, leaderboardUC, dashboardUC, log)
	userHandler := handlers.NewUserHandler(
		syncUserUC, getProfileUC, updateProfileUC, setVisibilityUC, getVisibilityUC, getRoleUC, log)
	taskHandler := handlers.NewTaskHandler(
		createTaskUC, listStudentTasksUC, listTeacherTasksUC, submitTaskUC, listSubmissionsUC, log)

	router := httpRouter.NewRouter(cfg, redisClient, platformHandler, userHandler, taskHandler, log)
	engine := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
