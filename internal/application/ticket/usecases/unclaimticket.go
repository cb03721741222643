package usecases

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// UnclaimTicketCommand releases a ticket. A nil ActorID is the system
// releasing it; otherwise only the current assignee may unclaim.
type UnclaimTicketCommand struct {
	TicketID string
	ActorID  *string
}

type UnclaimTicketResult struct {
	TicketID     string
	Status       string
	LifecycleRan []string
}

// UnclaimTicketUseCase releases a ticket back to the pool, resets every
// action to pending so the next claimer starts fresh, and fires on_unclaim
// actions after commit.
type UnclaimTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	actionRepo ticket.ActionRepository
	auditRepo  ticket.AuditLogRepository
	lifecycle  RunLifecycleActionsExecutor
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewUnclaimTicketUseCase(
	ticketRepo ticket.TicketRepository,
	actionRepo ticket.ActionRepository,
	auditRepo ticket.AuditLogRepository,
	lifecycle RunLifecycleActionsExecutor,
	txRunner TransactionRunner,
	logger logger.Interface,
) *UnclaimTicketUseCase {
	return &UnclaimTicketUseCase{
		ticketRepo: ticketRepo,
		actionRepo: actionRepo,
		auditRepo:  auditRepo,
		lifecycle:  lifecycle,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *UnclaimTicketUseCase) Execute(ctx context.Context, cmd UnclaimTicketCommand) (*UnclaimTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tk, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if cmd.ActorID != nil && !tk.IsAssignedTo(*cmd.ActorID) {
		return nil, errors.NewPermissionError("only the assigned user may unclaim this ticket", tk.ID())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		tk.Unclaim()
		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			return err
		}
		if err := uc.actionRepo.ResetForTicket(txCtx, tk.ID()); err != nil {
			return err
		}
		entry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
			TicketID:  tk.ID(),
			EventType: vo.AuditUnclaimed,
			Message:   "ticket unclaimed, actions reset",
			ActorID:   cmd.ActorID,
			Success:   true,
		})
		if err != nil {
			return err
		}
		return uc.auditRepo.Append(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	lifecycleResult, err := uc.lifecycle.Execute(ctx, RunLifecycleActionsCommand{
		TicketID: tk.ID(),
		Mode:     vo.RunOnUnclaim,
	})
	if err != nil {
		uc.logger.Warnw("on_unclaim actions failed", "ticket_id", tk.ID(), "error", err)
		lifecycleResult = &RunLifecycleActionsResult{}
	}

	return &UnclaimTicketResult{
		TicketID:     tk.ID(),
		Status:       tk.Status().String(),
		LifecycleRan: lifecycleResult.Ran,
	}, nil
}
