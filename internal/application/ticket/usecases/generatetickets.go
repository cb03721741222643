package usecases

import (
	"context"
	"fmt"

	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// GenerateTicketsCommand generates tickets for an event's participants.
// When TemplateName is set that ticket template is used directly; otherwise
// the event's event template decides which ticket templates apply. A ShiftID
// narrows participants to one shift; by default every assignment on the
// event, including the hidden default shift, is considered. PersonIDs,
// when set, keeps only those people. BatchName and Reason override the
// generated batch's name and audit note.
type GenerateTicketsCommand struct {
	EventID      string
	TemplateName *string
	ShiftID      *string
	PersonIDs    []string
	BatchName    *string
	Reason       string
	// IncludeDefaultShift defaults to true when nil.
	IncludeDefaultShift *bool
	ActorID             *string
}

type GenerateTicketsResult struct {
	BatchID       string
	TicketIDs     []string
	Deduplicated  int
	LifecycleRuns []string
}

// GenerateTicketsUseCase creates a batch of tickets, one per (template,
// participant) pair, inside a single transaction. on_create actions run
// after the transaction commits so their side effects never apply to
// tickets that were rolled back.
type GenerateTicketsUseCase struct {
	eventRepo         event.EventRepository
	eventTemplateRepo event.TemplateRepository
	shiftRepo         event.ShiftRepository
	assignmentRepo    event.AssignmentRepository
	orgRepo           org.Repository
	personRepo        person.PersonRepository
	templateRepo      ticket.TemplateRepository
	batchRepo         ticket.BatchRepository
	factory           *ticketFactory
	lifecycle         ExecuteActionExecutor
	txRunner          TransactionRunner
	logger            logger.Interface
}

func NewGenerateTicketsUseCase(
	eventRepo event.EventRepository,
	eventTemplateRepo event.TemplateRepository,
	shiftRepo event.ShiftRepository,
	assignmentRepo event.AssignmentRepository,
	orgRepo org.Repository,
	personRepo person.PersonRepository,
	ticketRepo ticket.TicketRepository,
	actionRepo ticket.ActionRepository,
	templateRepo ticket.TemplateRepository,
	batchRepo ticket.BatchRepository,
	auditRepo ticket.AuditLogRepository,
	renderer TemplateRenderer,
	lifecycle ExecuteActionExecutor,
	txRunner TransactionRunner,
	log logger.Interface,
) *GenerateTicketsUseCase {
	return &GenerateTicketsUseCase{
		eventRepo:         eventRepo,
		eventTemplateRepo: eventTemplateRepo,
		shiftRepo:         shiftRepo,
		assignmentRepo:    assignmentRepo,
		orgRepo:           orgRepo,
		personRepo:        personRepo,
		templateRepo:      templateRepo,
		batchRepo:         batchRepo,
		factory: &ticketFactory{
			ticketRepo:   ticketRepo,
			actionRepo:   actionRepo,
			templateRepo: templateRepo,
			auditRepo:    auditRepo,
			personRepo:   personRepo,
			renderer:     renderer,
			logger:       log,
		},
		lifecycle: lifecycle,
		txRunner:  txRunner,
		logger:    log,
	}
}

func (uc *GenerateTicketsUseCase) Execute(ctx context.Context, cmd GenerateTicketsCommand) (*GenerateTicketsResult, error) {
	if cmd.EventID == "" {
		return nil, errors.NewValidationError("event ID is required")
	}

	ev, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, err
	}
	organization, err := uc.orgRepo.GetByID(ctx, ev.OrgID())
	if err != nil {
		return nil, err
	}

	templates, err := uc.resolveTemplates(ctx, ev, cmd.TemplateName)
	if err != nil {
		return nil, err
	}

	includeDefault := cmd.IncludeDefaultShift == nil || *cmd.IncludeDefaultShift
	assignments, err := uc.assignmentRepo.ListForEvent(ctx, ev.ID(), event.AssignmentFilter{
		ShiftID:             cmd.ShiftID,
		IncludeDefaultShift: includeDefault,
		PersonIDs:           cmd.PersonIDs,
	})
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, errors.NewNoEligibleParticipantsError(
			fmt.Sprintf("event %q has no participants to generate tickets for", ev.Title()),
		)
	}

	// Caps compare against the people resolved for this call, not lifetime
	// ticket counts, and fail before anything is written.
	people := map[string]struct{}{}
	for _, a := range assignments {
		people[a.PersonID()] = struct{}{}
	}
	for _, tmpl := range templates {
		if tmpl.ExceedsCap(len(people)) {
			return nil, errors.NewCapacityExceededError(
				fmt.Sprintf("template %q caps at %d tickets but %d people resolved",
					tmpl.Name(), *tmpl.MaxTickets(), len(people)),
			)
		}
	}

	result := &GenerateTicketsResult{}
	var onCreate []string

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		batchName := fmt.Sprintf("Tickets for %s", ev.Title())
		if cmd.BatchName != nil && *cmd.BatchName != "" {
			batchName = *cmd.BatchName
		}
		eventID := ev.ID()
		batch, err := ticket.NewBatch(ticket.NewBatchParams{
			OrgID:           ev.OrgID(),
			EventID:         &eventID,
			ShiftID:         cmd.ShiftID,
			Name:            batchName,
			Reason:          cmd.Reason,
			Claimable:       true,
			DefaultPriority: vo.PriorityDefault,
			CreatedBy:       cmd.ActorID,
		})
		if err != nil {
			return err
		}
		if err := uc.batchRepo.Save(txCtx, batch); err != nil {
			return err
		}
		batchID := batch.ID()
		result.BatchID = batchID

		shiftCache := map[string]*event.Shift{}
		for _, tmpl := range templates {
			for _, assignment := range assignments {
				p, err := uc.personRepo.GetByID(txCtx, assignment.PersonID())
				if err != nil {
					return err
				}
				shift, ok := shiftCache[assignment.ShiftID()]
				if !ok {
					shift, err = uc.shiftRepo.GetByID(txCtx, assignment.ShiftID())
					if err != nil {
						return err
					}
					shiftCache[assignment.ShiftID()] = shift
				}

				created, err := uc.factory.create(txCtx, createTicketParams{
					tmpl:     tmpl,
					org:      organization,
					person:   p,
					event:    ev,
					shift:    shift,
					batchID:  &batchID,
					reporter: cmd.ActorID,
				})
				if err != nil {
					return err
				}
				if created.deduplicated {
					result.Deduplicated++
					continue
				}
				result.TicketIDs = append(result.TicketIDs, created.ticket.ID())
				onCreate = append(onCreate, created.onCreateActions...)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: the tickets exist, now let their on_create actions fire.
	for _, actionID := range onCreate {
		if _, err := uc.lifecycle.Execute(ctx, ExecuteActionCommand{ActionID: actionID}); err != nil {
			uc.logger.Warnw("on_create action failed", "action_id", actionID, "error", err)
			continue
		}
		result.LifecycleRuns = append(result.LifecycleRuns, actionID)
	}

	uc.logger.Infow("generated tickets for event",
		"event_id", ev.ID(),
		"batch_id", result.BatchID,
		"created", len(result.TicketIDs),
		"deduplicated", result.Deduplicated,
	)
	return result, nil
}

// resolveTemplates decides which ticket templates apply: the explicitly
// named one, or the set wired to the event's event template.
func (uc *GenerateTicketsUseCase) resolveTemplates(ctx context.Context, ev *event.Event, templateName *string) ([]*ticket.Template, error) {
	if templateName != nil {
		tmpl, err := uc.templateRepo.GetTemplateForOrg(ctx, *templateName, ev.OrgID())
		if err != nil {
			return nil, err
		}
		return []*ticket.Template{tmpl}, nil
	}

	if ev.TemplateID() == nil {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("event %q has no event template and no ticket template was named", ev.Title()),
		)
	}
	eventTmpl, err := uc.eventTemplateRepo.GetByID(ctx, *ev.TemplateID())
	if err != nil {
		return nil, err
	}
	if len(eventTmpl.TicketTemplateIDs()) == 0 {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("event template %q has no ticket templates attached", eventTmpl.Name()),
		)
	}
	templates, err := uc.templateRepo.ListActiveTemplatesByIDs(ctx, eventTmpl.TicketTemplateIDs())
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("event template %q has no active ticket templates", eventTmpl.Name()),
		)
	}
	return templates, nil
}
