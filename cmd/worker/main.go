package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libdough/openvolunteer/internal/application/ticket/actions"
	ticketUsecases "github.com/libdough/openvolunteer/internal/application/ticket/usecases"
	"github.com/libdough/openvolunteer/internal/infrastructure/config"
	"github.com/libdough/openvolunteer/internal/infrastructure/database"
	"github.com/libdough/openvolunteer/internal/infrastructure/repository"
	"github.com/libdough/openvolunteer/internal/infrastructure/scheduler"
	"github.com/libdough/openvolunteer/internal/infrastructure/template"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting maintenance worker")

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	gdb := database.Get()
	ticketRepo := repository.NewTicketRepository(gdb)
	actionRepo := repository.NewActionRepository(gdb)
	auditRepo := repository.NewAuditLogRepository(gdb)
	batchRepo := repository.NewBatchRepository(gdb)
	shiftRepo := repository.NewShiftRepository(gdb)
	assignmentRepo := repository.NewAssignmentRepository(gdb)
	tagRepo := repository.NewTagRepository(gdb)
	txRunner := db.NewTransactionManager(gdb)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Errorw("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	maintenanceInterval := time.Duration(cfg.Scheduler.MaintenanceIntervalHours) * time.Hour
	err = manager.RegisterMaintenanceJobs(
		maintenanceInterval,
		scheduler.NewCancelStaleTicketsJob(
			ticketUsecases.NewCancelStaleTicketsUseCase(ticketRepo, &cfg.Maintenance, log)),
		scheduler.NewCancelEventTicketsJob(
			ticketUsecases.NewCancelEventTicketsUseCase(ticketRepo, &cfg.Maintenance, log)),
		scheduler.NewDeleteOldTicketsJob(
			ticketUsecases.NewDeleteOldTicketsUseCase(ticketRepo, &cfg.Maintenance, log)),
		scheduler.NewDeleteDanglingBatchesJob(
			ticketUsecases.NewDeleteDanglingBatchesUseCase(batchRepo, log)),
	)
	if err != nil {
		log.Errorw("failed to register maintenance jobs", "error", err)
		os.Exit(1)
	}

	if cfg.TagTickets.Enabled {
		dispatcher := actions.NewDispatcher(shiftRepo, assignmentRepo, tagRepo, log)
		executeAction := ticketUsecases.NewExecuteActionUseCase(
			ticketRepo, actionRepo, auditRepo, dispatcher, txRunner, log)
		tagUC := ticketUsecases.NewCreateTicketsForTagUseCase(
			repository.NewOrganizationRepository(gdb),
			repository.NewPersonRepository(gdb),
			ticketRepo,
			actionRepo,
			repository.NewTicketTemplateRepository(gdb),
			batchRepo,
			auditRepo,
			template.NewRenderer(),
			executeAction,
			txRunner,
			&cfg.TagTickets,
			log,
		)

		tagInterval := time.Duration(cfg.Scheduler.TagTicketsIntervalMinutes) * time.Minute
		if err := manager.RegisterTagTicketsJob(tagInterval, scheduler.NewCreateTicketsForTagJob(tagUC)); err != nil {
			log.Errorw("failed to register tag tickets job", "error", err)
			os.Exit(1)
		}
	}

	manager.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received shutdown signal", "signal", sig.String())

	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Infow("maintenance worker stopped")
}
