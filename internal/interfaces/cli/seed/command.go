package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libdough/openvolunteer/internal/infrastructure/config"
	"github.com/libdough/openvolunteer/internal/infrastructure/database"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/seeds"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install default templates",
		Long: `Install the default global action templates, ticket templates and event templates.
Seeding is idempotent and safe to run on every deploy.`,
		RunE: run,
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
	log.Infow("installing default templates")

	if err := seeds.SeedAll(database.Get()); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("default templates installed")
	return nil
}
