package valueobjects

import "fmt"

// AuditEvent tags an entry in a ticket's append-only audit trail.
type AuditEvent string

const (
	AuditCreated       AuditEvent = "created"
	AuditUpdated       AuditEvent = "updated"
	AuditClaimed       AuditEvent = "claimed"
	AuditUnclaimed     AuditEvent = "unclaimed"
	AuditStatusChanged AuditEvent = "status_changed"
	AuditActionRun     AuditEvent = "action_run"
	AuditActionFailed  AuditEvent = "action_failed"
	AuditSystem        AuditEvent = "system"
)

var validAuditEvents = map[AuditEvent]bool{
	AuditCreated:       true,
	AuditUpdated:       true,
	AuditClaimed:       true,
	AuditUnclaimed:     true,
	AuditStatusChanged: true,
	AuditActionRun:     true,
	AuditActionFailed:  true,
	AuditSystem:        true,
}

func NewAuditEvent(s string) (AuditEvent, error) {
	ae := AuditEvent(s)
	if !ae.IsValid() {
		return "", fmt.Errorf("invalid audit event type: %s", s)
	}
	return ae, nil
}

func (ae AuditEvent) String() string {
	return string(ae)
}

func (ae AuditEvent) IsValid() bool {
	return validAuditEvents[ae]
}
