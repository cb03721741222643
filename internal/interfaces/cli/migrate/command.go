package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libdough/openvolunteer/internal/infrastructure/config"
	"github.com/libdough/openvolunteer/internal/infrastructure/database"
	"github.com/libdough/openvolunteer/internal/infrastructure/migration"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  `Run schema auto-migration to bring the database up to date with the registered models.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	log.Infow("running schema migration", "driver", cfg.Database.Driver)

	if err := migration.Run(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migration completed successfully")
	return nil
}
