package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"codecampus/internal/infrastructure/config"
	"codecampus/internal/infrastructure/database"
	"codecampus/internal/infrastructure/persistence/models"
	"codecampus/internal/shared/logger"
)

var env string

// NewCommand creates the migrate command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Create or update the database schema for all application tables.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	logger.Info("running migrations", "database", cfg.Database.Database)

	if err := database.Get().AutoMigrate(
		&models.UserModel{},
		&models.PlatformStatModel{},
		&models.TaskModel{},
		&models.SubmissionModel{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed")
	return nil
}
