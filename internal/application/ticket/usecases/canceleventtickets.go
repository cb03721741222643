package usecases

import (
	"context"
	"time"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/config"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type CancelEventTicketsCommand struct{}

type CancelEventTicketsResult struct {
	Canceled int64
}

// CancelEventTicketsUseCase cancels open work belonging to canceled events.
// Tickets touched within the configured buffer window are left alone so a
// volunteer actively wrapping up is not yanked mid-task.
type CancelEventTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	cfg        *config.MaintenanceConfig
	logger     logger.Interface
}

func NewCancelEventTicketsUseCase(ticketRepo ticket.TicketRepository, cfg *config.MaintenanceConfig, logger logger.Interface) *CancelEventTicketsUseCase {
	return &CancelEventTicketsUseCase{ticketRepo: ticketRepo, cfg: cfg, logger: logger}
}

func (uc *CancelEventTicketsUseCase) Execute(ctx context.Context, _ CancelEventTicketsCommand) (*CancelEventTicketsResult, error) {
	cutoff := time.Now().AddDate(0, 0, -uc.cfg.CancelBufferDays)
	count, err := uc.ticketRepo.CancelForCanceledEvents(ctx, cutoff, vo.StatusCanceled)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		uc.logger.Infow("canceled tickets for canceled events", "count", count)
	}
	return &CancelEventTicketsResult{Canceled: count}, nil
}
