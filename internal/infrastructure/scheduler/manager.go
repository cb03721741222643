// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using a single gocron
// scheduler instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterMaintenanceJobs registers the ticket maintenance chain:
// - Cancel tickets untouched past the staleness window
// - Cancel tickets belonging to canceled events
// - Delete closed tickets past the retention window
// - Delete batches with no open tickets left
func (m *SchedulerManager) RegisterMaintenanceJobs(
	interval time.Duration,
	cancelStaleJob BatchJob,
	cancelEventJob BatchJob,
	deleteOldJob BatchJob,
	deleteBatchesJob BatchJob,
) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.processMaintenanceTasks(ctx, cancelStaleJob, cancelEventJob, deleteOldJob, deleteBatchesJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("maintenance", "stale", "retention", "batches"),
		gocron.WithName("ticket-maintenance"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered maintenance jobs", "interval", interval)
	return nil
}

func (m *SchedulerManager) processMaintenanceTasks(
	ctx context.Context,
	cancelStaleJob BatchJob,
	cancelEventJob BatchJob,
	deleteOldJob BatchJob,
	deleteBatchesJob BatchJob,
) {
	m.logger.Debugw("processing maintenance tasks started")

	startTime := time.Now()

	// Step 1: Cancel tickets that have sat untouched past the staleness window
	staleCount, err := cancelStaleJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to cancel stale tickets",
			"error", err,
			"duration", time.Since(startTime),
		)
	} else if staleCount > 0 {
		m.logger.Infow("stale tickets canceled",
			"count", staleCount,
			"duration", time.Since(startTime),
		)
	}

	// Step 2: Cancel tickets belonging to canceled events
	eventCount, err := cancelEventJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to cancel tickets for canceled events",
			"error", err,
		)
	} else if eventCount > 0 {
		m.logger.Infow("tickets for canceled events canceled",
			"count", eventCount,
		)
	}

	// Step 3: Delete closed tickets past the retention window
	deletedCount, err := deleteOldJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to delete old tickets",
			"error", err,
		)
	} else if deletedCount > 0 {
		m.logger.Infow("old tickets deleted",
			"count", deletedCount,
		)
	}

	// Step 4: Delete batches with no open tickets left. Runs last so
	// batches emptied by the retention pass are picked up in the same cycle.
	batchCount, err := deleteBatchesJob.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to delete dangling batches",
			"error", err,
		)
	} else if batchCount > 0 {
		m.logger.Infow("dangling batches deleted",
			"count", batchCount,
		)
	}
}

// RegisterTagTicketsJob registers the periodic tag-driven ticket generation job.
func (m *SchedulerManager) RegisterTagTicketsJob(
	interval time.Duration,
	tagTicketsJob BatchJob,
) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.processTagTickets(ctx, tagTicketsJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("tickets", "tag-generation"),
		gocron.WithName("tag-ticket-generator"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered tag tickets job", "interval", interval)
	return nil
}

func (m *SchedulerManager) processTagTickets(ctx context.Context, tagTicketsJob BatchJob) {
	m.logger.Debugw("processing tag tickets task started")

	startTime := time.Now()

	createdCount, err := tagTicketsJob.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to generate tag tickets",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if createdCount > 0 {
		m.logger.Infow("tag tickets generated",
			"count", createdCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no tag tickets to generate",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
