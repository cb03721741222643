package event

import (
	"context"
)

// EventRepository loads events for ticket generation and maintenance.
type EventRepository interface {
	Save(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, eventID string) (*Event, error)
}

// TemplateRepository stores event templates and their attached ticket
// template IDs.
type TemplateRepository interface {
	Save(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, templateID string) (*Template, error)
	GetByName(ctx context.Context, name string) (*Template, error)
}

// ShiftRepository stores shifts. GetOrCreateDefault guarantees the hidden
// default shift exists for an event.
type ShiftRepository interface {
	Save(ctx context.Context, s *Shift) error
	GetByID(ctx context.Context, shiftID string) (*Shift, error)
	GetOrCreateDefault(ctx context.Context, eventID string) (*Shift, error)
}

// AssignmentFilter narrows the assignment rows considered during ticket
// generation. Naming a shift restricts to that shift alone; otherwise
// IncludeDefaultShift decides whether the hidden default shift counts.
// PersonIDs, when set, keeps only assignments for those people.
type AssignmentFilter struct {
	ShiftID             *string
	IncludeDefaultShift bool
	PersonIDs           []string
}

// AssignmentRepository stores shift assignments keyed by the unique
// (shift, person) pair.
type AssignmentRepository interface {
	Save(ctx context.Context, a *ShiftAssignment) error
	Update(ctx context.Context, a *ShiftAssignment) error
	GetByShiftAndPerson(ctx context.Context, shiftID, personID string) (*ShiftAssignment, error)
	ListForEvent(ctx context.Context, eventID string, filter AssignmentFilter) ([]*ShiftAssignment, error)
}
