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

// ticketFactory creates one ticket from a template: dedup check,
// name/description rendering, action instantiation, audit entry. It is the
// shared core of event generation and tag-driven generation and always runs
// inside the caller's transaction. Template caps are the caller's problem,
// checked against the resolved people before any ticket is written.
type ticketFactory struct {
	ticketRepo   ticket.TicketRepository
	actionRepo   ticket.ActionRepository
	templateRepo ticket.TemplateRepository
	auditRepo    ticket.AuditLogRepository
	personRepo   person.PersonRepository
	renderer     TemplateRenderer
	logger       logger.Interface
}

type createTicketParams struct {
	tmpl     *ticket.Template
	org      *org.Organization
	person   *person.Person
	event    *event.Event
	shift    *event.Shift
	batchID  *string
	reporter *string
}

type createTicketResult struct {
	ticket          *ticket.Ticket
	onCreateActions []string
	// deduplicated is set when an equivalent ticket already exists and no
	// new one was created.
	deduplicated bool
}

func (f *ticketFactory) create(ctx context.Context, p createTicketParams) (*createTicketResult, error) {
	tmpl := p.tmpl
	orgID := p.org.ID()

	var personID, eventID, shiftID *string
	if p.person != nil {
		pid := p.person.ID()
		personID = &pid
	}
	if p.event != nil {
		eid := p.event.ID()
		eventID = &eid
	}
	if p.shift != nil {
		sid := p.shift.ID()
		shiftID = &sid
	}

	if personID != nil {
		exists, err := f.ticketRepo.ExistsForTemplateAndPerson(ctx, tmpl.ID(), orgID, *personID, eventID)
		if err != nil {
			return nil, err
		}
		if exists {
			f.logger.Debugw("skipping duplicate ticket",
				"template", tmpl.Name(),
				"person_id", *personID,
			)
			return &createTicketResult{deduplicated: true}, nil
		}
	}

	reporterName := f.resolveDisplayName(ctx, p.reporter)
	renderCtx := BuildRenderContext(RenderInputs{
		Org:          p.org,
		Person:       p.person,
		Event:        p.event,
		Shift:        p.shift,
		Template:     tmpl,
		ActorName:    reporterName,
		ReporterName: reporterName,
	})
	name, err := f.renderer.Render(tmpl.NameTemplate(), renderCtx)
	if err != nil {
		return nil, err
	}
	description, err := f.renderer.Render(tmpl.DescriptionTemplate(), renderCtx)
	if err != nil {
		return nil, err
	}

	templateID := tmpl.ID()
	tk, err := ticket.NewTicket(ticket.NewTicketParams{
		OrgID:       orgID,
		BatchID:     p.batchID,
		TemplateID:  &templateID,
		EventID:     eventID,
		ShiftID:     shiftID,
		PersonID:    personID,
		Name:        name,
		Description: description,
		Priority:    tmpl.DefaultPriority(),
		Claimable:   tmpl.Claimable(),
		ReporterID:  p.reporter,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := f.ticketRepo.Save(ctx, tk); err != nil {
		return nil, err
	}

	actionTmpls, err := f.templateRepo.ListActionTemplates(ctx, tmpl.ID())
	if err != nil {
		return nil, err
	}
	var (
		actions         []*ticket.Action
		onCreateActions []string
	)
	for _, at := range actionTmpls {
		act, err := ticket.NewActionFromTemplate(tk.ID(), at)
		if err != nil {
			return nil, errors.NewConfigurationError(err.Error())
		}
		actions = append(actions, act)
		if act.RunMode() == vo.RunOnCreate {
			onCreateActions = append(onCreateActions, act.ID())
		}
	}
	if len(actions) > 0 {
		if err := f.actionRepo.SaveAll(ctx, actions); err != nil {
			return nil, err
		}
	}

	entry, err := ticket.NewAuditLog(ticket.NewAuditLogParams{
		TicketID:  tk.ID(),
		EventType: vo.AuditCreated,
		Message:   fmt.Sprintf("ticket created from template %q", tmpl.Name()),
		ActorID:   p.reporter,
		Success:   true,
		Metadata:  map[string]any{"template_id": tmpl.ID()},
	})
	if err != nil {
		return nil, err
	}
	if err := f.auditRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return &createTicketResult{ticket: tk, onCreateActions: onCreateActions}, nil
}

// resolveDisplayName turns a user reference into something a template can
// print. References that do not resolve to a person fall back to the raw
// identifier.
func (f *ticketFactory) resolveDisplayName(ctx context.Context, userID *string) string {
	if userID == nil {
		return ""
	}
	if p, err := f.personRepo.GetByID(ctx, *userID); err == nil && p != nil {
		return p.FullName()
	}
	return *userID
}
