package usecases

import (
	"context"
	"time"

	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                       func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                     func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                    func(ctx context.Context, ticketID string) (*ticket.Ticket, error)
	DeleteFunc                     func(ctx context.Context, ticketID string) error
	ExistsForTemplateAndPersonFunc func(ctx context.Context, templateID, orgID, personID string, eventID *string) (bool, error)
	CountInBatchFunc               func(ctx context.Context, batchID string) (int64, error)
	CancelWhereStaleFunc           func(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time, target vo.TicketStatus) (int64, error)
	CancelForCanceledEventsFunc    func(ctx context.Context, cutoff time.Time, target vo.TicketStatus) (int64, error)
	DeleteClosedBeforeFunc         func(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) ExistsForTemplateAndPerson(ctx context.Context, templateID, orgID, personID string, eventID *string) (bool, error) {
	if m.ExistsForTemplateAndPersonFunc != nil {
		return m.ExistsForTemplateAndPersonFunc(ctx, templateID, orgID, personID, eventID)
	}
	return false, nil
}

func (m *mockTicketRepository) CountInBatch(ctx context.Context, batchID string) (int64, error) {
	if m.CountInBatchFunc != nil {
		return m.CountInBatchFunc(ctx, batchID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CancelWhereStale(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time, target vo.TicketStatus) (int64, error) {
	if m.CancelWhereStaleFunc != nil {
		return m.CancelWhereStaleFunc(ctx, statuses, cutoff, target)
	}
	return 0, nil
}

func (m *mockTicketRepository) CancelForCanceledEvents(ctx context.Context, cutoff time.Time, target vo.TicketStatus) (int64, error) {
	if m.CancelForCanceledEventsFunc != nil {
		return m.CancelForCanceledEventsFunc(ctx, cutoff, target)
	}
	return 0, nil
}

func (m *mockTicketRepository) DeleteClosedBefore(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time) (int64, error) {
	if m.DeleteClosedBeforeFunc != nil {
		return m.DeleteClosedBeforeFunc(ctx, statuses, cutoff)
	}
	return 0, nil
}

type mockActionRepository struct {
	SaveAllFunc                 func(ctx context.Context, actions []*ticket.Action) error
	UpdateFunc                  func(ctx context.Context, a *ticket.Action) error
	GetByIDFunc                 func(ctx context.Context, actionID string) (*ticket.Action, error)
	ListByTicketFunc            func(ctx context.Context, ticketID string) ([]*ticket.Action, error)
	ListIncompleteByRunModeFunc func(ctx context.Context, ticketID string, mode vo.RunMode) ([]*ticket.Action, error)
	ResetForTicketFunc          func(ctx context.Context, ticketID string) error
}

func (m *mockActionRepository) SaveAll(ctx context.Context, actions []*ticket.Action) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, actions)
	}
	return nil
}

func (m *mockActionRepository) Update(ctx context.Context, a *ticket.Action) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockActionRepository) GetByID(ctx context.Context, actionID string) (*ticket.Action, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, actionID)
	}
	return nil, nil
}

func (m *mockActionRepository) ListByTicket(ctx context.Context, ticketID string) ([]*ticket.Action, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockActionRepository) ListIncompleteByRunMode(ctx context.Context, ticketID string, mode vo.RunMode) ([]*ticket.Action, error) {
	if m.ListIncompleteByRunModeFunc != nil {
		return m.ListIncompleteByRunModeFunc(ctx, ticketID, mode)
	}
	return nil, nil
}

func (m *mockActionRepository) ResetForTicket(ctx context.Context, ticketID string) error {
	if m.ResetForTicketFunc != nil {
		return m.ResetForTicketFunc(ctx, ticketID)
	}
	return nil
}

type mockBatchRepository struct {
	SaveFunc           func(ctx context.Context, b *ticket.Batch) error
	GetByIDFunc        func(ctx context.Context, batchID string) (*ticket.Batch, error)
	DeleteFunc         func(ctx context.Context, batchID string) error
	DeleteDanglingFunc func(ctx context.Context) (int64, error)
}

func (m *mockBatchRepository) Save(ctx context.Context, b *ticket.Batch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBatchRepository) GetByID(ctx context.Context, batchID string) (*ticket.Batch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, batchID)
	}
	return nil, nil
}

func (m *mockBatchRepository) Delete(ctx context.Context, batchID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, batchID)
	}
	return nil
}

func (m *mockBatchRepository) DeleteDangling(ctx context.Context) (int64, error) {
	if m.DeleteDanglingFunc != nil {
		return m.DeleteDanglingFunc(ctx)
	}
	return 0, nil
}

type mockTemplateRepository struct {
	SaveTemplateFunc             func(ctx context.Context, t *ticket.Template) error
	GetTemplateByIDFunc          func(ctx context.Context, templateID string) (*ticket.Template, error)
	GetTemplateByNameFunc        func(ctx context.Context, name string, orgID *string) (*ticket.Template, error)
	GetTemplateForOrgFunc        func(ctx context.Context, name, orgID string) (*ticket.Template, error)
	ListActiveTemplatesByIDsFunc func(ctx context.Context, templateIDs []string) ([]*ticket.Template, error)
	SaveActionTemplateFunc       func(ctx context.Context, at *ticket.ActionTemplate) error
	GetActionTemplateBySlugFunc  func(ctx context.Context, slug string) (*ticket.ActionTemplate, error)
	ListActionTemplatesFunc      func(ctx context.Context, templateID string) ([]*ticket.ActionTemplate, error)
}

func (m *mockTemplateRepository) SaveTemplate(ctx context.Context, t *ticket.Template) error {
	if m.SaveTemplateFunc != nil {
		return m.SaveTemplateFunc(ctx, t)
	}
	return nil
}

func (m *mockTemplateRepository) GetTemplateByID(ctx context.Context, templateID string) (*ticket.Template, error) {
	if m.GetTemplateByIDFunc != nil {
		return m.GetTemplateByIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) GetTemplateByName(ctx context.Context, name string, orgID *string) (*ticket.Template, error) {
	if m.GetTemplateByNameFunc != nil {
		return m.GetTemplateByNameFunc(ctx, name, orgID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) GetTemplateForOrg(ctx context.Context, name, orgID string) (*ticket.Template, error) {
	if m.GetTemplateForOrgFunc != nil {
		return m.GetTemplateForOrgFunc(ctx, name, orgID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) ListActiveTemplatesByIDs(ctx context.Context, templateIDs []string) ([]*ticket.Template, error) {
	if m.ListActiveTemplatesByIDsFunc != nil {
		return m.ListActiveTemplatesByIDsFunc(ctx, templateIDs)
	}
	return nil, nil
}

func (m *mockTemplateRepository) SaveActionTemplate(ctx context.Context, at *ticket.ActionTemplate) error {
	if m.SaveActionTemplateFunc != nil {
		return m.SaveActionTemplateFunc(ctx, at)
	}
	return nil
}

func (m *mockTemplateRepository) GetActionTemplateBySlug(ctx context.Context, slug string) (*ticket.ActionTemplate, error) {
	if m.GetActionTemplateBySlugFunc != nil {
		return m.GetActionTemplateBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockTemplateRepository) ListActionTemplates(ctx context.Context, templateID string) ([]*ticket.ActionTemplate, error) {
	if m.ListActionTemplatesFunc != nil {
		return m.ListActionTemplatesFunc(ctx, templateID)
	}
	return nil, nil
}

type mockAuditLogRepository struct {
	AppendFunc               func(ctx context.Context, entry *ticket.AuditLog) error
	ListByTicketFunc         func(ctx context.Context, ticketID string) ([]*ticket.AuditLog, error)
	CountByTicketAndTypeFunc func(ctx context.Context, ticketID string, eventType vo.AuditEvent) (int64, error)
}

func (m *mockAuditLogRepository) Append(ctx context.Context, entry *ticket.AuditLog) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockAuditLogRepository) ListByTicket(ctx context.Context, ticketID string) ([]*ticket.AuditLog, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAuditLogRepository) CountByTicketAndType(ctx context.Context, ticketID string, eventType vo.AuditEvent) (int64, error) {
	if m.CountByTicketAndTypeFunc != nil {
		return m.CountByTicketAndTypeFunc(ctx, ticketID, eventType)
	}
	return 0, nil
}

type mockEventRepository struct {
	SaveFunc    func(ctx context.Context, e *event.Event) error
	UpdateFunc  func(ctx context.Context, e *event.Event) error
	GetByIDFunc func(ctx context.Context, eventID string) (*event.Event, error)
}

func (m *mockEventRepository) Save(ctx context.Context, e *event.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) Update(ctx context.Context, e *event.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, eventID string) (*event.Event, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, eventID)
	}
	return nil, nil
}

type mockEventTemplateRepository struct {
	SaveFunc      func(ctx context.Context, t *event.Template) error
	GetByIDFunc   func(ctx context.Context, templateID string) (*event.Template, error)
	GetByNameFunc func(ctx context.Context, name string) (*event.Template, error)
}

func (m *mockEventTemplateRepository) Save(ctx context.Context, t *event.Template) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockEventTemplateRepository) GetByID(ctx context.Context, templateID string) (*event.Template, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockEventTemplateRepository) GetByName(ctx context.Context, name string) (*event.Template, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

type mockShiftRepository struct {
	SaveFunc               func(ctx context.Context, s *event.Shift) error
	GetByIDFunc            func(ctx context.Context, shiftID string) (*event.Shift, error)
	GetOrCreateDefaultFunc func(ctx context.Context, eventID string) (*event.Shift, error)
}

func (m *mockShiftRepository) Save(ctx context.Context, s *event.Shift) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockShiftRepository) GetByID(ctx context.Context, shiftID string) (*event.Shift, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, shiftID)
	}
	return nil, nil
}

func (m *mockShiftRepository) GetOrCreateDefault(ctx context.Context, eventID string) (*event.Shift, error) {
	if m.GetOrCreateDefaultFunc != nil {
		return m.GetOrCreateDefaultFunc(ctx, eventID)
	}
	return nil, nil
}

type mockAssignmentRepository struct {
	SaveFunc                func(ctx context.Context, a *event.ShiftAssignment) error
	UpdateFunc              func(ctx context.Context, a *event.ShiftAssignment) error
	GetByShiftAndPersonFunc func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error)
	ListForEventFunc        func(ctx context.Context, eventID string, filter event.AssignmentFilter) ([]*event.ShiftAssignment, error)
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *event.ShiftAssignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *event.ShiftAssignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByShiftAndPerson(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
	if m.GetByShiftAndPersonFunc != nil {
		return m.GetByShiftAndPersonFunc(ctx, shiftID, personID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListForEvent(ctx context.Context, eventID string, filter event.AssignmentFilter) ([]*event.ShiftAssignment, error) {
	if m.ListForEventFunc != nil {
		return m.ListForEventFunc(ctx, eventID, filter)
	}
	return nil, nil
}

type mockOrgRepository struct {
	SaveFunc        func(ctx context.Context, o *org.Organization) error
	GetByIDFunc     func(ctx context.Context, orgID string) (*org.Organization, error)
	GetBySlugFunc   func(ctx context.Context, slug string) (*org.Organization, error)
	ListBySlugsFunc func(ctx context.Context, slugs []string) ([]*org.Organization, error)
	ListAllFunc     func(ctx context.Context) ([]*org.Organization, error)
}

func (m *mockOrgRepository) Save(ctx context.Context, o *org.Organization) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, o)
	}
	return nil
}

func (m *mockOrgRepository) GetByID(ctx context.Context, orgID string) (*org.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, orgID)
	}
	return nil, nil
}

func (m *mockOrgRepository) GetBySlug(ctx context.Context, slug string) (*org.Organization, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockOrgRepository) ListBySlugs(ctx context.Context, slugs []string) ([]*org.Organization, error) {
	if m.ListBySlugsFunc != nil {
		return m.ListBySlugsFunc(ctx, slugs)
	}
	return nil, nil
}

func (m *mockOrgRepository) ListAll(ctx context.Context) ([]*org.Organization, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockPersonRepository struct {
	SaveFunc        func(ctx context.Context, p *person.Person) error
	GetByIDFunc     func(ctx context.Context, personID string) (*person.Person, error)
	ListWithTagFunc func(ctx context.Context, tagName, orgID string, limit int) ([]*person.Person, error)
	LinkToOrgFunc   func(ctx context.Context, personID, orgID, role string) error
}

func (m *mockPersonRepository) Save(ctx context.Context, p *person.Person) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPersonRepository) GetByID(ctx context.Context, personID string) (*person.Person, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, personID)
	}
	return nil, nil
}

func (m *mockPersonRepository) ListWithTag(ctx context.Context, tagName, orgID string, limit int) ([]*person.Person, error) {
	if m.ListWithTagFunc != nil {
		return m.ListWithTagFunc(ctx, tagName, orgID, limit)
	}
	return nil, nil
}

func (m *mockPersonRepository) LinkToOrg(ctx context.Context, personID, orgID, role string) error {
	if m.LinkToOrgFunc != nil {
		return m.LinkToOrgFunc(ctx, personID, orgID, role)
	}
	return nil
}

type mockRenderer struct {
	RenderFunc func(text string, ctx map[string]any) (string, error)
}

func (m *mockRenderer) Render(text string, ctx map[string]any) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(text, ctx)
	}
	return text, nil
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error
}

func (m *mockDispatcher) Dispatch(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, tk, act)
	}
	return nil
}

// mockTxRunner runs the unit of work directly, with no real transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockExecuteActionExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ExecuteActionCommand) (*ExecuteActionResult, error)
}

func (m *mockExecuteActionExecutor) Execute(ctx context.Context, cmd ExecuteActionCommand) (*ExecuteActionResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &ExecuteActionResult{}, nil
}

type mockLifecycleExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd RunLifecycleActionsCommand) (*RunLifecycleActionsResult, error)
}

func (m *mockLifecycleExecutor) Execute(ctx context.Context, cmd RunLifecycleActionsCommand) (*RunLifecycleActionsResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &RunLifecycleActionsResult{}, nil
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                   {}
func (mockLogger) Info(msg string, args ...any)                    {}
func (mockLogger) Warn(msg string, args ...any)                    {}
func (mockLogger) Error(msg string, args ...any)                   {}
func (m mockLogger) With(args ...any) logger.Interface             { return m }
func (m mockLogger) Named(name string) logger.Interface            { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
