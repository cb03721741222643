package usecases

import (
	"context"
	"fmt"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// UpdateTicketCommand edits ticket fields. Nil pointers leave the field
// untouched.
type UpdateTicketCommand struct {
	TicketID    string
	ActorID     *string
	Name        *string
	Description *string
	Status      *string
	Priority    *int
	Claimable   *bool
}

type UpdateTicketResult struct {
	TicketID     string
	Status       string
	LifecycleRan []string
}

// UpdateTicketUseCase applies field edits, audits them, and fires on_update
// actions after the edit commits.
type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	auditRepo  ticket.AuditLogRepository
	lifecycle  RunLifecycleActionsExecutor
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	auditRepo ticket.AuditLogRepository,
	lifecycle RunLifecycleActionsExecutor,
	txRunner TransactionRunner,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		lifecycle:  lifecycle,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	tk, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	changed := map[string]any{}
	previousStatus := tk.Status()

	if cmd.Name != nil {
		if err := tk.SetName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed["name"] = *cmd.Name
	}
	if cmd.Description != nil {
		tk.SetDescription(*cmd.Description)
		changed["description"] = *cmd.Description
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := tk.SetPriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed["priority"] = *cmd.Priority
	}
	if cmd.Claimable != nil {
		tk.SetClaimable(*cmd.Claimable)
		changed["claimable"] = *cmd.Claimable
	}
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := tk.SetStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed["status"] = *cmd.Status
	}

	if len(changed) == 0 {
		return &UpdateTicketResult{TicketID: tk.ID(), Status: tk.Status().String()}, nil
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, tk); err != nil {
			return err
		}

		entry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
			TicketID:  tk.ID(),
			EventType: vo.AuditUpdated,
			Message:   "ticket updated",
			ActorID:   cmd.ActorID,
			Success:   true,
			Metadata:  changed,
		})
		if err != nil {
			return err
		}
		if err := uc.auditRepo.Append(txCtx, entry); err != nil {
			return err
		}

		if tk.Status() != previousStatus {
			statusEntry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
				TicketID:  tk.ID(),
				EventType: vo.AuditStatusChanged,
				Message:   fmt.Sprintf("status changed from %s to %s", previousStatus, tk.Status()),
				ActorID:   cmd.ActorID,
				Success:   true,
				Metadata: map[string]any{
					"from": previousStatus.String(),
					"to":   tk.Status().String(),
				},
			})
			if err != nil {
				return err
			}
			return uc.auditRepo.Append(txCtx, statusEntry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lifecycleResult, err := uc.lifecycle.Execute(ctx, RunLifecycleActionsCommand{
		TicketID: tk.ID(),
		Mode:     vo.RunOnUpdate,
	})
	if err != nil {
		uc.logger.Warnw("on_update actions failed", "ticket_id", tk.ID(), "error", err)
		lifecycleResult = &RunLifecycleActionsResult{}
	}

	return &UpdateTicketResult{
		TicketID:     tk.ID(),
		Status:       tk.Status().String(),
		LifecycleRan: lifecycleResult.Ran,
	}, nil
}
