// Package actions contains one handler per ticket action type and the
// dispatcher that routes an action to its handler. Handlers mutate related
// records (shift assignments, tags); they never touch the ticket or the
// action themselves, that is the executing use case's job.
package actions

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// Handler applies the side effect of one action type.
type Handler interface {
	Execute(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error
}

// Dispatcher routes an action to the handler for its type. The handler set
// is fixed at construction; an action with an unregistered type is a
// configuration error, not a panic.
type Dispatcher struct {
	handlers map[vo.ActionType]Handler
	logger   logger.Interface
}

func NewDispatcher(
	shiftRepo event.ShiftRepository,
	assignmentRepo event.AssignmentRepository,
	tagRepo person.TagRepository,
	log logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		handlers: map[vo.ActionType]Handler{
			vo.ActionNoop: noopHandler{},
			vo.ActionUpdateShiftStatus: &updateShiftStatusHandler{
				shiftRepo:      shiftRepo,
				assignmentRepo: assignmentRepo,
			},
			vo.ActionUpsertShiftAssignment: &upsertShiftAssignmentHandler{
				shiftRepo:      shiftRepo,
				assignmentRepo: assignmentRepo,
			},
			vo.ActionUpsertTag: &upsertTagHandler{tagRepo: tagRepo, logger: log},
			vo.ActionRemoveTag: &removeTagHandler{tagRepo: tagRepo, logger: log},
		},
		logger: log,
	}
}

// Dispatch runs the handler for the action's type.
func (d *Dispatcher) Dispatch(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
	h, ok := d.handlers[act.ActionType()]
	if !ok {
		return errors.NewConfigurationError("no handler for action type", act.ActionType().String())
	}

	d.logger.Debugw("dispatching ticket action",
		"ticket_id", tk.ID(),
		"action_id", act.ID(),
		"action_type", act.ActionType().String(),
	)
	return h.Execute(ctx, tk, act)
}

// noopHandler exists so noop actions flow through the same execution path
// as every other type.
type noopHandler struct{}

func (noopHandler) Execute(context.Context, *ticket.Ticket, *ticket.Action) error {
	return nil
}
