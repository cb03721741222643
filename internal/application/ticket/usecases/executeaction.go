package usecases

import (
	"context"
	"fmt"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// ExecuteActionCommand runs one ticket action. A nil ActorID means the
// system is executing (lifecycle triggers, scheduled jobs) and skips the
// assignee permission check.
type ExecuteActionCommand struct {
	ActionID string
	ActorID  *string
}

type ExecuteActionResult struct {
	TicketID      string
	TicketStatus  string
	StatusChanged bool
}

// ExecuteActionUseCase is the action state machine: permission check,
// idempotency check, handler side effect, audit entry, optional ticket
// status transition, completion mark. The side effect and all writes share
// one transaction; a handler failure rolls everything back and then records
// an action_failed audit entry in its own transaction so the trail survives
// the rollback.
type ExecuteActionUseCase struct {
	ticketRepo ticket.TicketRepository
	actionRepo ticket.ActionRepository
	auditRepo  ticket.AuditLogRepository
	dispatcher ActionDispatcher
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewExecuteActionUseCase(
	ticketRepo ticket.TicketRepository,
	actionRepo ticket.ActionRepository,
	auditRepo ticket.AuditLogRepository,
	dispatcher ActionDispatcher,
	txRunner TransactionRunner,
	logger logger.Interface,
) *ExecuteActionUseCase {
	return &ExecuteActionUseCase{
		ticketRepo: ticketRepo,
		actionRepo: actionRepo,
		auditRepo:  auditRepo,
		dispatcher: dispatcher,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *ExecuteActionUseCase) Execute(ctx context.Context, cmd ExecuteActionCommand) (*ExecuteActionResult, error) {
	if cmd.ActionID == "" {
		return nil, errors.NewValidationError("action ID is required")
	}

	act, err := uc.actionRepo.GetByID(ctx, cmd.ActionID)
	if err != nil {
		return nil, err
	}
	tk, err := uc.ticketRepo.GetByID(ctx, act.TicketID())
	if err != nil {
		return nil, err
	}

	if cmd.ActorID != nil && !tk.IsAssignedTo(*cmd.ActorID) {
		return nil, errors.NewPermissionError("only the assigned user may run this action", act.ID())
	}
	if act.IsCompleted() {
		return nil, errors.NewAlreadyCompletedError("action has already run", act.ID())
	}

	result := &ExecuteActionResult{TicketID: tk.ID()}
	isSystem := cmd.ActorID == nil

	var dispatchErr error
	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.dispatcher.Dispatch(txCtx, tk, act); err != nil {
			dispatchErr = err
			return err
		}

		ranEntry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
			TicketID:  tk.ID(),
			EventType: vo.AuditActionRun,
			Message:   fmt.Sprintf("action %q executed", act.Label()),
			ActorID:   cmd.ActorID,
			Success:   true,
			Metadata: map[string]any{
				"action_id":   act.ID(),
				"action_type": act.ActionType().String(),
				"is_system":   isSystem,
			},
		})
		if err != nil {
			return err
		}
		if err := uc.auditRepo.Append(txCtx, ranEntry); err != nil {
			return err
		}

		if target := act.UpdatesTicketStatus(); target != nil && tk.Status() != *target {
			previous := tk.Status()
			if err := tk.SetStatus(*target); err != nil {
				return err
			}
			if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
				return err
			}
			statusEntry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
				TicketID:  tk.ID(),
				EventType: vo.AuditStatusChanged,
				Message:   fmt.Sprintf("status changed from %s to %s", previous, *target),
				ActorID:   cmd.ActorID,
				Success:   true,
				Metadata: map[string]any{
					"from":      previous.String(),
					"to":        target.String(),
					"action_id": act.ID(),
				},
			})
			if err != nil {
				return err
			}
			if err := uc.auditRepo.Append(txCtx, statusEntry); err != nil {
				return err
			}
			result.StatusChanged = true
		}

		if err := act.MarkCompleted(); err != nil {
			return err
		}
		return uc.actionRepo.Update(txCtx, act)
	})

	if txErr != nil {
		// Only a handler failure earns an action_failed entry; audit or
		// bookkeeping write errors already surface through txErr.
		if dispatchErr != nil {
			uc.recordFailure(ctx, tk, act, cmd.ActorID, dispatchErr)
		}
		return nil, txErr
	}

	result.TicketStatus = tk.Status().String()
	return result, nil
}

// recordFailure writes the action_failed audit entry after the main
// transaction has rolled back, in its own transaction, so failed runs stay
// visible in the trail.
func (uc *ExecuteActionUseCase) recordFailure(ctx context.Context, tk *ticket.Ticket, act *ticket.Action, actorID *string, cause error) {
	entry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
		TicketID:  tk.ID(),
		EventType: vo.AuditActionFailed,
		Message:   fmt.Sprintf("action %q failed: %s", act.Label(), cause.Error()),
		ActorID:   actorID,
		Success:   false,
		Metadata: map[string]any{
			"action_id":   act.ID(),
			"action_type": act.ActionType().String(),
			"error":       cause.Error(),
			"is_system":   actorID == nil,
		},
	})
	if err != nil {
		uc.logger.Errorw("failed to build action_failed audit entry", "error", err, "action_id", act.ID())
		return
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to record action failure", "error", err, "action_id", act.ID())
	}
}
