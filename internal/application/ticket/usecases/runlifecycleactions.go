package usecases

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// RunLifecycleActionsCommand runs every incomplete action on a ticket whose
// run mode matches the lifecycle trigger that just fired.
type RunLifecycleActionsCommand struct {
	TicketID string
	Mode     vo.RunMode
}

type RunLifecycleActionsResult struct {
	Ran    []string
	Failed []string
}

// RunLifecycleActionsUseCase executes lifecycle-triggered actions as the
// system actor. One failing action does not stop the rest; each failure is
// already audited by the action executor.
type RunLifecycleActionsUseCase struct {
	actionRepo ticket.ActionRepository
	executor   ExecuteActionExecutor
	logger     logger.Interface
}

func NewRunLifecycleActionsUseCase(
	actionRepo ticket.ActionRepository,
	executor ExecuteActionExecutor,
	logger logger.Interface,
) *RunLifecycleActionsUseCase {
	return &RunLifecycleActionsUseCase{
		actionRepo: actionRepo,
		executor:   executor,
		logger:     logger,
	}
}

func (uc *RunLifecycleActionsUseCase) Execute(ctx context.Context, cmd RunLifecycleActionsCommand) (*RunLifecycleActionsResult, error) {
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Mode.IsValid() || !cmd.Mode.IsAutomatic() {
		return nil, errors.NewValidationError("run mode must be a lifecycle mode", cmd.Mode.String())
	}

	actions, err := uc.actionRepo.ListIncompleteByRunMode(ctx, cmd.TicketID, cmd.Mode)
	if err != nil {
		return nil, err
	}

	result := &RunLifecycleActionsResult{}
	for _, act := range actions {
		_, err := uc.executor.Execute(ctx, ExecuteActionCommand{ActionID: act.ID()})
		switch {
		case err == nil:
			result.Ran = append(result.Ran, act.ID())
		case errors.IsAlreadyCompletedError(err):
			// Raced with another trigger; the work is done.
		default:
			uc.logger.Warnw("lifecycle action failed",
				"ticket_id", cmd.TicketID,
				"action_id", act.ID(),
				"mode", cmd.Mode.String(),
				"error", err,
			)
			result.Failed = append(result.Failed, act.ID())
		}
	}
	return result, nil
}
