package ticket

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// AuditLog is one entry in a ticket's append-only audit trail. Entries are
// immutable once written and only ever deleted cascading with their ticket.
type AuditLog struct {
	id        string
	ticketID  string
	eventType vo.AuditEvent
	message   string
	actorID   *string // nil = system
	success   bool
	metadata  map[string]any
	createdAt time.Time
}

type NewAuditLogParams struct {
	TicketID  string
	EventType vo.AuditEvent
	Message   string
	ActorID   *string
	Success   bool
	Metadata  map[string]any
}

func NewAuditLog(p NewAuditLogParams) (*AuditLog, error) {
	if p.TicketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !p.EventType.IsValid() {
		return nil, fmt.Errorf("invalid audit event type: %s", p.EventType)
	}
	if p.Metadata == nil {
		p.Metadata = make(map[string]any)
	}

	return &AuditLog{
		id:        id.New(),
		ticketID:  p.TicketID,
		eventType: p.EventType,
		message:   p.Message,
		actorID:   p.ActorID,
		success:   p.Success,
		metadata:  p.Metadata,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAuditLog(
	logID, ticketID string,
	eventType vo.AuditEvent,
	message string,
	actorID *string,
	success bool,
	metadata map[string]any,
	createdAt time.Time,
) (*AuditLog, error) {
	if logID == "" {
		return nil, fmt.Errorf("audit log ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid audit event type: %s", eventType)
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &AuditLog{
		id:        logID,
		ticketID:  ticketID,
		eventType: eventType,
		message:   message,
		actorID:   actorID,
		success:   success,
		metadata:  metadata,
		createdAt: createdAt,
	}, nil
}

func (l *AuditLog) ID() string               { return l.id }
func (l *AuditLog) TicketID() string         { return l.ticketID }
func (l *AuditLog) EventType() vo.AuditEvent { return l.eventType }
func (l *AuditLog) Message() string          { return l.message }
func (l *AuditLog) ActorID() *string         { return l.actorID }
func (l *AuditLog) Success() bool            { return l.success }
func (l *AuditLog) CreatedAt() time.Time     { return l.createdAt }

func (l *AuditLog) IsSystem() bool { return l.actorID == nil }

func (l *AuditLog) Metadata() map[string]any {
	out := make(map[string]any, len(l.metadata))
	for k, v := range l.metadata {
		out[k] = v
	}
	return out
}
