package usecases

import (
	"context"
	"time"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/config"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type DeleteOldTicketsCommand struct{}

type DeleteOldTicketsResult struct {
	Deleted int64
}

// DeleteOldTicketsUseCase hard-deletes closed tickets past the retention
// window, along with their actions and audit trail. A non-positive
// retention disables deletion entirely.
type DeleteOldTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	cfg        *config.MaintenanceConfig
	logger     logger.Interface
}

func NewDeleteOldTicketsUseCase(ticketRepo ticket.TicketRepository, cfg *config.MaintenanceConfig, logger logger.Interface) *DeleteOldTicketsUseCase {
	return &DeleteOldTicketsUseCase{ticketRepo: ticketRepo, cfg: cfg, logger: logger}
}

func (uc *DeleteOldTicketsUseCase) Execute(ctx context.Context, _ DeleteOldTicketsCommand) (*DeleteOldTicketsResult, error) {
	if uc.cfg.RetentionDays <= 0 {
		return &DeleteOldTicketsResult{}, nil
	}

	cutoff := time.Now().AddDate(0, 0, -uc.cfg.RetentionDays)
	count, err := uc.ticketRepo.DeleteClosedBefore(ctx, vo.ClosedStatuses(), cutoff)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		uc.logger.Infow("deleted old closed tickets", "count", count, "cutoff", cutoff)
	}
	return &DeleteOldTicketsResult{Deleted: count}, nil
}
