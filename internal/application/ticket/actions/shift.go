package actions

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

// resolveShiftID picks the shift a shift action operates on: the ticket's
// own shift when set, otherwise the default shift of the ticket's event.
func resolveShiftID(ctx context.Context, shiftRepo event.ShiftRepository, tk *ticket.Ticket) (string, error) {
	if tk.ShiftID() != nil {
		return *tk.ShiftID(), nil
	}
	if tk.EventID() == nil {
		return "", errors.NewConfigurationError("ticket has no shift or event to resolve a shift from", tk.ID())
	}
	shift, err := shiftRepo.GetOrCreateDefault(ctx, *tk.EventID())
	if err != nil {
		return "", err
	}
	return shift.ID(), nil
}

// updateShiftStatusHandler overwrites the status on an existing assignment.
// A missing assignment is a configuration error: this type is meant for
// templates whose generation guarantees the assignment exists.
type updateShiftStatusHandler struct {
	shiftRepo      event.ShiftRepository
	assignmentRepo event.AssignmentRepository
}

func (h *updateShiftStatusHandler) Execute(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
	cfg, ok := act.Config().(ticket.ShiftStatusConfig)
	if !ok {
		return errors.NewConfigurationError("update_shift_status action has wrong config type", act.ID())
	}
	if tk.PersonID() == nil {
		return errors.NewConfigurationError("update_shift_status requires a ticket with a person", tk.ID())
	}

	shiftID, err := resolveShiftID(ctx, h.shiftRepo, tk)
	if err != nil {
		return err
	}

	assignment, err := h.assignmentRepo.GetByShiftAndPerson(ctx, shiftID, *tk.PersonID())
	if err != nil {
		return err
	}
	if err := assignment.SetStatus(cfg.Status); err != nil {
		return err
	}
	return h.assignmentRepo.Update(ctx, assignment)
}

// upsertShiftAssignmentHandler creates the assignment when missing, then
// sets its status. Concurrent creators race on the unique (shift, person)
// row; the loser re-reads and updates.
type upsertShiftAssignmentHandler struct {
	shiftRepo      event.ShiftRepository
	assignmentRepo event.AssignmentRepository
}

func (h *upsertShiftAssignmentHandler) Execute(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
	cfg, ok := act.Config().(ticket.ShiftStatusConfig)
	if !ok {
		return errors.NewConfigurationError("upsert_shift_assignment action has wrong config type", act.ID())
	}
	if tk.PersonID() == nil {
		return errors.NewConfigurationError("upsert_shift_assignment requires a ticket with a person", tk.ID())
	}
	personID := *tk.PersonID()

	shiftID, err := resolveShiftID(ctx, h.shiftRepo, tk)
	if err != nil {
		return err
	}

	assignment, err := h.assignmentRepo.GetByShiftAndPerson(ctx, shiftID, personID)
	switch {
	case err == nil:
		if err := assignment.SetStatus(cfg.Status); err != nil {
			return err
		}
		return h.assignmentRepo.Update(ctx, assignment)

	case errors.IsNotFoundError(err):
		assignment, err = event.NewShiftAssignment(shiftID, personID, cfg.Status, tk.AssignedTo())
		if err != nil {
			return err
		}
		if saveErr := h.assignmentRepo.Save(ctx, assignment); saveErr != nil {
			if !errors.IsDuplicateError(saveErr) {
				return saveErr
			}
			// Lost the race; the row exists now.
			assignment, err = h.assignmentRepo.GetByShiftAndPerson(ctx, shiftID, personID)
			if err != nil {
				return err
			}
			if err := assignment.SetStatus(cfg.Status); err != nil {
				return err
			}
			return h.assignmentRepo.Update(ctx, assignment)
		}
		return nil

	default:
		return err
	}
}
