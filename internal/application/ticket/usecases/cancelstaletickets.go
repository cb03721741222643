package usecases

import (
	"context"
	"time"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/config"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type CancelStaleTicketsCommand struct{}

type CancelStaleTicketsResult struct {
	Canceled int64
}

// CancelStaleTicketsUseCase bulk-cancels tickets that sat untouched in a
// configured set of statuses for longer than the configured number of days.
type CancelStaleTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	cfg        *config.MaintenanceConfig
	logger     logger.Interface
}

func NewCancelStaleTicketsUseCase(ticketRepo ticket.TicketRepository, cfg *config.MaintenanceConfig, logger logger.Interface) *CancelStaleTicketsUseCase {
	return &CancelStaleTicketsUseCase{ticketRepo: ticketRepo, cfg: cfg, logger: logger}
}

func (uc *CancelStaleTicketsUseCase) Execute(ctx context.Context, _ CancelStaleTicketsCommand) (*CancelStaleTicketsResult, error) {
	if uc.cfg.StaleDays <= 0 {
		return &CancelStaleTicketsResult{}, nil
	}

	statuses := make([]vo.TicketStatus, 0, len(uc.cfg.StaleStatuses))
	for _, s := range uc.cfg.StaleStatuses {
		status, err := vo.NewTicketStatus(s)
		if err != nil {
			return nil, errors.NewConfigurationError("invalid stale status in maintenance config", s)
		}
		if status.IsClosed() {
			return nil, errors.NewConfigurationError("closed statuses cannot be staled", s)
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		statuses = []vo.TicketStatus{vo.StatusInProgress, vo.StatusBlocked}
	}

	cutoff := time.Now().AddDate(0, 0, -uc.cfg.StaleDays)
	count, err := uc.ticketRepo.CancelWhereStale(ctx, statuses, cutoff, vo.StatusCanceled)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		uc.logger.Infow("canceled stale tickets", "count", count, "cutoff", cutoff)
	}
	return &CancelStaleTicketsResult{Canceled: count}, nil
}
