package ticket

import (
	"context"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. The bulk methods back the maintenance
// jobs; each executes as a single statement so a killed job cannot leave a
// half-updated batch.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID string) (*Ticket, error)
	Delete(ctx context.Context, ticketID string) error

	// ExistsForTemplateAndPerson reports whether a ticket already exists for
	// the (template, org, person, event) combination, the generation dedup
	// key. A nil eventID matches tickets with no event.
	ExistsForTemplateAndPerson(ctx context.Context, templateID, orgID, personID string, eventID *string) (bool, error)

	CountInBatch(ctx context.Context, batchID string) (int64, error)

	// CancelWhereStale bulk-updates tickets in the given statuses whose
	// modified time is before cutoff.
	CancelWhereStale(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time, target vo.TicketStatus) (int64, error)

	// CancelForCanceledEvents bulk-cancels tickets whose event is canceled,
	// skipping tickets modified after cutoff.
	CancelForCanceledEvents(ctx context.Context, cutoff time.Time, target vo.TicketStatus) (int64, error)

	// DeleteClosedBefore hard-deletes tickets in the given terminal statuses
	// older than cutoff, cascading actions and audit rows.
	DeleteClosedBefore(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time) (int64, error)
}

// ActionRepository persists ticket actions.
type ActionRepository interface {
	SaveAll(ctx context.Context, actions []*Action) error
	Update(ctx context.Context, a *Action) error
	GetByID(ctx context.Context, actionID string) (*Action, error)
	ListByTicket(ctx context.Context, ticketID string) ([]*Action, error)
	ListIncompleteByRunMode(ctx context.Context, ticketID string, mode vo.RunMode) ([]*Action, error)
	// ResetForTicket returns every action on the ticket to pending.
	ResetForTicket(ctx context.Context, ticketID string) error
}

// BatchRepository persists ticket batches.
type BatchRepository interface {
	Save(ctx context.Context, b *Batch) error
	GetByID(ctx context.Context, batchID string) (*Batch, error)
	Delete(ctx context.Context, batchID string) error
	// DeleteDangling removes batches with zero tickets or whose every ticket
	// is closed.
	DeleteDangling(ctx context.Context) (int64, error)
}

// TemplateRepository stores ticket templates and action templates.
type TemplateRepository interface {
	SaveTemplate(ctx context.Context, t *Template) error
	GetTemplateByID(ctx context.Context, templateID string) (*Template, error)
	// GetTemplateByName looks a template up by exact (name, org scope).
	GetTemplateByName(ctx context.Context, name string, orgID *string) (*Template, error)
	// GetTemplateForOrg resolves name preferring an org-scoped template over
	// a global one; returns a not-found error when neither exists.
	GetTemplateForOrg(ctx context.Context, name, orgID string) (*Template, error)
	// ListActiveTemplatesByIDs returns the active subset of the given IDs.
	ListActiveTemplatesByIDs(ctx context.Context, templateIDs []string) ([]*Template, error)

	SaveActionTemplate(ctx context.Context, at *ActionTemplate) error
	GetActionTemplateBySlug(ctx context.Context, slug string) (*ActionTemplate, error)
	// ListActionTemplates returns the active action templates attached to a
	// ticket template.
	ListActionTemplates(ctx context.Context, templateID string) ([]*ActionTemplate, error)
}

// AuditLogRepository is append-only; entries are never updated and only
// removed cascading with their ticket.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *AuditLog) error
	// ListByTicket returns the trail newest entry first.
	ListByTicket(ctx context.Context, ticketID string) ([]*AuditLog, error)
	CountByTicketAndType(ctx context.Context, ticketID string, eventType vo.AuditEvent) (int64, error)
}
