// Package maintenance exposes the scheduled maintenance jobs as one-shot
// CLI runs, useful for cron-driven deployments and manual operation.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/application/ticket/actions"
	ticketUsecases "github.com/libdough/openvolunteer/internal/application/ticket/usecases"
	"github.com/libdough/openvolunteer/internal/infrastructure/config"
	"github.com/libdough/openvolunteer/internal/infrastructure/database"
	"github.com/libdough/openvolunteer/internal/infrastructure/repository"
	"github.com/libdough/openvolunteer/internal/infrastructure/template"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

const jobTimeout = 10 * time.Minute

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Run ticket maintenance jobs",
		Long:  `Run a single ticket maintenance job and exit. The worker daemon runs the same jobs on a schedule.`,
	}

	cmd.AddCommand(
		newJobCommand("stale", "Cancel tickets untouched past the staleness window", runStale),
		newJobCommand("events", "Cancel tickets belonging to canceled events", runEvents),
		newJobCommand("retention", "Delete closed tickets past the retention window", runRetention),
		newJobCommand("batches", "Delete batches with no open tickets left", runBatches),
		newJobCommand("tag", "Generate tickets for tagged people", runTag),
		newJobCommand("all", "Run every maintenance job in order", runAll),
	)

	return cmd
}

type jobFunc func(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error

func newJobCommand(use, short string, job jobFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			ctx, cancel := context.WithTimeout(cmd.Context(), jobTimeout)
			defer cancel()

			return job(ctx, database.Get(), cfg, logger.NewLogger())
		},
	}
}

func runStale(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error {
	uc := ticketUsecases.NewCancelStaleTicketsUseCase(repository.NewTicketRepository(gdb), &cfg.Maintenance, log)
	result, err := uc.Execute(ctx, ticketUsecases.CancelStaleTicketsCommand{})
	if err != nil {
		return err
	}
	log.Infow("stale ticket job finished", "canceled", result.Canceled)
	return nil
}

func runEvents(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error {
	uc := ticketUsecases.NewCancelEventTicketsUseCase(repository.NewTicketRepository(gdb), &cfg.Maintenance, log)
	result, err := uc.Execute(ctx, ticketUsecases.CancelEventTicketsCommand{})
	if err != nil {
		return err
	}
	log.Infow("canceled event job finished", "canceled", result.Canceled)
	return nil
}

func runRetention(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error {
	uc := ticketUsecases.NewDeleteOldTicketsUseCase(repository.NewTicketRepository(gdb), &cfg.Maintenance, log)
	result, err := uc.Execute(ctx, ticketUsecases.DeleteOldTicketsCommand{})
	if err != nil {
		return err
	}
	log.Infow("retention job finished", "deleted", result.Deleted)
	return nil
}

func runBatches(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error {
	uc := ticketUsecases.NewDeleteDanglingBatchesUseCase(repository.NewBatchRepository(gdb), log)
	result, err := uc.Execute(ctx, ticketUsecases.DeleteDanglingBatchesCommand{})
	if err != nil {
		return err
	}
	log.Infow("dangling batch job finished", "deleted", result.Deleted)
	return nil
}

func runTag(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error {
	uc := newCreateTicketsForTagUseCase(gdb, cfg, log)
	result, err := uc.Execute(ctx, ticketUsecases.CreateTicketsForTagCommand{})
	if err != nil {
		return err
	}
	log.Infow("tag ticket job finished", "created", result.Created, "deduplicated", result.Deduplicated)
	return nil
}

func runAll(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) error {
	jobs := []jobFunc{runStale, runEvents, runRetention, runBatches, runTag}
	for _, job := range jobs {
		if err := job(ctx, gdb, cfg, log); err != nil {
			return err
		}
	}
	return nil
}

func newCreateTicketsForTagUseCase(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *ticketUsecases.CreateTicketsForTagUseCase {
	ticketRepo := repository.NewTicketRepository(gdb)
	actionRepo := repository.NewActionRepository(gdb)
	auditRepo := repository.NewAuditLogRepository(gdb)
	shiftRepo := repository.NewShiftRepository(gdb)
	assignmentRepo := repository.NewAssignmentRepository(gdb)
	tagRepo := repository.NewTagRepository(gdb)
	txRunner := db.NewTransactionManager(gdb)

	dispatcher := actions.NewDispatcher(shiftRepo, assignmentRepo, tagRepo, log)
	executeAction := ticketUsecases.NewExecuteActionUseCase(
		ticketRepo, actionRepo, auditRepo, dispatcher, txRunner, log)

	return ticketUsecases.NewCreateTicketsForTagUseCase(
		repository.NewOrganizationRepository(gdb),
		repository.NewPersonRepository(gdb),
		ticketRepo,
		actionRepo,
		repository.NewTicketTemplateRepository(gdb),
		repository.NewBatchRepository(gdb),
		auditRepo,
		template.NewRenderer(),
		executeAction,
		txRunner,
		&cfg.TagTickets,
		log,
	)
}
