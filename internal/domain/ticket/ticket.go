// Package ticket is the core of the workflow engine: tickets, their
// templates, batches, actions and audit trail.
package ticket

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Ticket is a trackable unit of human work, optionally tied to an event,
// shift and person.
//
// Invariant, enforced on every mutation:
//   - status=open    => assignedTo == nil && completedAt == nil
//   - status=completed => completedAt != nil
//   - any other status => completedAt == nil
type Ticket struct {
	id          string
	orgID       string
	batchID     *string
	templateID  *string
	eventID     *string
	shiftID     *string
	personID    *string
	name        string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	assignedTo  *string
	reporterID  *string
	claimable   bool
	createdAt   time.Time
	modifiedAt  time.Time
	completedAt *time.Time
}

type NewTicketParams struct {
	OrgID       string
	BatchID     *string
	TemplateID  *string
	EventID     *string
	ShiftID     *string
	PersonID    *string
	Name        string
	Description string
	Priority    vo.Priority
	Claimable   bool
	ReporterID  *string
}

func NewTicket(p NewTicketParams) (*Ticket, error) {
	if p.OrgID == "" {
		return nil, fmt.Errorf("org ID is required")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("ticket name is required")
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	t := &Ticket{
		id:          id.New(),
		orgID:       p.OrgID,
		batchID:     p.BatchID,
		templateID:  p.TemplateID,
		eventID:     p.EventID,
		shiftID:     p.ShiftID,
		personID:    p.PersonID,
		name:        p.Name,
		description: p.Description,
		status:      vo.StatusOpen,
		priority:    p.Priority,
		reporterID:  p.ReporterID,
		claimable:   p.Claimable,
		createdAt:   now,
		modifiedAt:  now,
	}
	t.enforceInvariants()
	return t, nil
}

type ReconstructTicketParams struct {
	ID          string
	OrgID       string
	BatchID     *string
	TemplateID  *string
	EventID     *string
	ShiftID     *string
	PersonID    *string
	Name        string
	Description string
	Status      vo.TicketStatus
	Priority    vo.Priority
	AssignedTo  *string
	ReporterID  *string
	Claimable   bool
	CreatedAt   time.Time
	ModifiedAt  time.Time
	CompletedAt *time.Time
}

func ReconstructTicket(p ReconstructTicketParams) (*Ticket, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if p.OrgID == "" {
		return nil, fmt.Errorf("org ID is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", p.Status)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	t := &Ticket{
		id:          p.ID,
		orgID:       p.OrgID,
		batchID:     p.BatchID,
		templateID:  p.TemplateID,
		eventID:     p.EventID,
		shiftID:     p.ShiftID,
		personID:    p.PersonID,
		name:        p.Name,
		description: p.Description,
		status:      p.Status,
		priority:    p.Priority,
		assignedTo:  p.AssignedTo,
		reporterID:  p.ReporterID,
		claimable:   p.Claimable,
		createdAt:   p.CreatedAt,
		modifiedAt:  p.ModifiedAt,
		completedAt: p.CompletedAt,
	}
	t.enforceInvariants()
	return t, nil
}

func (t *Ticket) ID() string              { return t.id }
func (t *Ticket) OrgID() string           { return t.orgID }
func (t *Ticket) BatchID() *string        { return t.batchID }
func (t *Ticket) TemplateID() *string     { return t.templateID }
func (t *Ticket) EventID() *string        { return t.eventID }
func (t *Ticket) ShiftID() *string        { return t.shiftID }
func (t *Ticket) PersonID() *string       { return t.personID }
func (t *Ticket) Name() string            { return t.name }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) AssignedTo() *string     { return t.assignedTo }
func (t *Ticket) ReporterID() *string     { return t.reporterID }
func (t *Ticket) Claimable() bool         { return t.claimable }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) ModifiedAt() time.Time   { return t.modifiedAt }
func (t *Ticket) CompletedAt() *time.Time { return t.completedAt }

func (t *Ticket) IsClosed() bool {
	return t.status.IsClosed()
}

// IsAssignedTo reports whether the ticket is currently assigned to userID.
func (t *Ticket) IsAssignedTo(userID string) bool {
	return t.assignedTo != nil && *t.assignedTo == userID
}

// SetStatus transitions the ticket to status and re-enforces the ticket
// invariant.
func (t *Ticket) SetStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", status)
	}
	t.status = status
	t.touch()
	return nil
}

// Claim assigns the ticket to userID and moves it to todo.
func (t *Ticket) Claim(userID string) error {
	if !t.claimable {
		return fmt.Errorf("ticket is not claimable")
	}
	if t.assignedTo != nil {
		return fmt.Errorf("ticket is already assigned")
	}
	t.assignedTo = &userID
	t.status = vo.StatusTodo
	t.touch()
	return nil
}

// Unclaim releases the ticket. Open tickets go back to the pool; closed
// tickets keep their terminal status.
func (t *Ticket) Unclaim() {
	t.assignedTo = nil
	if !t.IsClosed() {
		t.status = vo.StatusOpen
	}
	t.touch()
}

func (t *Ticket) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("ticket name is required")
	}
	t.name = name
	t.touch()
	return nil
}

func (t *Ticket) SetDescription(description string) {
	t.description = description
	t.touch()
}

func (t *Ticket) SetPriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	t.priority = priority
	t.touch()
	return nil
}

func (t *Ticket) SetClaimable(claimable bool) {
	t.claimable = claimable
	t.touch()
}

func (t *Ticket) touch() {
	t.modifiedAt = time.Now()
	t.enforceInvariants()
}

// enforceInvariants applies the ticket status invariant after every write.
func (t *Ticket) enforceInvariants() {
	if t.status == vo.StatusOpen {
		t.assignedTo = nil
		t.completedAt = nil
	}
	if t.status == vo.StatusCompleted && t.completedAt == nil {
		now := time.Now()
		t.completedAt = &now
	}
	if t.status != vo.StatusCompleted {
		t.completedAt = nil
	}
}
