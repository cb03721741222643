package scheduler

import (
	"context"

	ticketUsecases "github.com/libdough/openvolunteer/internal/application/ticket/usecases"
)

// The maintenance use cases take typed commands and return typed results.
// These adapters flatten them to the BatchJob shape the scheduler runs.

type cancelStaleTicketsJob struct {
	uc *ticketUsecases.CancelStaleTicketsUseCase
}

// NewCancelStaleTicketsJob wraps the stale-ticket cancellation use case as a BatchJob.
func NewCancelStaleTicketsJob(uc *ticketUsecases.CancelStaleTicketsUseCase) BatchJob {
	return &cancelStaleTicketsJob{uc: uc}
}

func (j *cancelStaleTicketsJob) Execute(ctx context.Context) (int, error) {
	result, err := j.uc.Execute(ctx, ticketUsecases.CancelStaleTicketsCommand{})
	if err != nil {
		return 0, err
	}
	return int(result.Canceled), nil
}

type cancelEventTicketsJob struct {
	uc *ticketUsecases.CancelEventTicketsUseCase
}

// NewCancelEventTicketsJob wraps the canceled-event cleanup use case as a BatchJob.
func NewCancelEventTicketsJob(uc *ticketUsecases.CancelEventTicketsUseCase) BatchJob {
	return &cancelEventTicketsJob{uc: uc}
}

func (j *cancelEventTicketsJob) Execute(ctx context.Context) (int, error) {
	result, err := j.uc.Execute(ctx, ticketUsecases.CancelEventTicketsCommand{})
	if err != nil {
		return 0, err
	}
	return int(result.Canceled), nil
}

type deleteOldTicketsJob struct {
	uc *ticketUsecases.DeleteOldTicketsUseCase
}

// NewDeleteOldTicketsJob wraps the retention deletion use case as a BatchJob.
func NewDeleteOldTicketsJob(uc *ticketUsecases.DeleteOldTicketsUseCase) BatchJob {
	return &deleteOldTicketsJob{uc: uc}
}

func (j *deleteOldTicketsJob) Execute(ctx context.Context) (int, error) {
	result, err := j.uc.Execute(ctx, ticketUsecases.DeleteOldTicketsCommand{})
	if err != nil {
		return 0, err
	}
	return int(result.Deleted), nil
}

type deleteDanglingBatchesJob struct {
	uc *ticketUsecases.DeleteDanglingBatchesUseCase
}

// NewDeleteDanglingBatchesJob wraps the dangling-batch cleanup use case as a BatchJob.
func NewDeleteDanglingBatchesJob(uc *ticketUsecases.DeleteDanglingBatchesUseCase) BatchJob {
	return &deleteDanglingBatchesJob{uc: uc}
}

func (j *deleteDanglingBatchesJob) Execute(ctx context.Context) (int, error) {
	result, err := j.uc.Execute(ctx, ticketUsecases.DeleteDanglingBatchesCommand{})
	if err != nil {
		return 0, err
	}
	return int(result.Deleted), nil
}

type createTicketsForTagJob struct {
	uc *ticketUsecases.CreateTicketsForTagUseCase
}

// NewCreateTicketsForTagJob wraps the tag-driven generation use case as a BatchJob.
func NewCreateTicketsForTagJob(uc *ticketUsecases.CreateTicketsForTagUseCase) BatchJob {
	return &createTicketsForTagJob{uc: uc}
}

func (j *createTicketsForTagJob) Execute(ctx context.Context) (int, error) {
	result, err := j.uc.Execute(ctx, ticketUsecases.CreateTicketsForTagCommand{})
	if err != nil {
		return 0, err
	}
	return result.Created, nil
}
