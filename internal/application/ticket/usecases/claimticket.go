package usecases

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type ClaimTicketCommand struct {
	TicketID string
	UserID   string
}

type ClaimTicketResult struct {
	TicketID string
	Status   string
	// LifecycleRan lists the on_claim actions that executed.
	LifecycleRan []string
}

// ClaimTicketUseCase assigns an open ticket to a user, audits the claim,
// and fires the ticket's on_claim actions after the claim has committed.
type ClaimTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	auditRepo  ticket.AuditLogRepository
	lifecycle  RunLifecycleActionsExecutor
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewClaimTicketUseCase(
	ticketRepo ticket.TicketRepository,
	auditRepo ticket.AuditLogRepository,
	lifecycle RunLifecycleActionsExecutor,
	txRunner TransactionRunner,
	logger logger.Interface,
) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		lifecycle:  lifecycle,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	tk, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := tk.Claim(cmd.UserID); err != nil {
			return errors.NewConflictError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			return err
		}
		entry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
			TicketID:  tk.ID(),
			EventType: vo.AuditClaimed,
			Message:   "ticket claimed",
			ActorID:   &cmd.UserID,
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
		Mode:     vo.RunOnClaim,
	})
	if err != nil {
		// The claim itself committed; surface the trigger failure in logs
		// only.
		uc.logger.Warnw("on_claim actions failed", "ticket_id", tk.ID(), "error", err)
		lifecycleResult = &RunLifecycleActionsResult{}
	}

	return &ClaimTicketResult{
		TicketID:     tk.ID(),
		Status:       tk.Status().String(),
		LifecycleRan: lifecycleResult.Ran,
	}, nil
}
