// Package dto shapes ticket aggregates for display surfaces.
package dto

import (
	"time"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/shared/services/markdown"
)

type TicketDTO struct {
	ID              string        `json:"id"`
	OrgID           string        `json:"org_id"`
	BatchID         *string       `json:"batch_id"`
	TemplateID      *string       `json:"template_id"`
	EventID         *string       `json:"event_id"`
	ShiftID         *string       `json:"shift_id"`
	PersonID        *string       `json:"person_id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html,omitempty"`
	Status          string        `json:"status"`
	Priority        int           `json:"priority"`
	AssignedTo      *string       `json:"assigned_to"`
	ReporterID      *string       `json:"reporter_id"`
	Claimable       bool          `json:"claimable"`
	CreatedAt       time.Time     `json:"created_at"`
	ModifiedAt      time.Time     `json:"modified_at"`
	CompletedAt     *time.Time    `json:"completed_at"`
	Actions         []ActionDTO   `json:"actions,omitempty"`
	AuditLog        []AuditLogDTO `json:"audit_log,omitempty"`
}

type ActionDTO struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	ActionType  string     `json:"action_type"`
	RunMode     string     `json:"run_mode"`
	ButtonColor string     `json:"button_color"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type AuditLogDTO struct {
	ID        string         `json:"id"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	ActorID   *string        `json:"actor_id"`
	Success   bool           `json:"success"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// ToTicketDTO flattens a ticket with its actions and audit trail. When a
// markdown service is supplied the rendered description is also converted
// to sanitized HTML; conversion failures fall back to the raw text.
func ToTicketDTO(t *ticket.Ticket, actions []*ticket.Action, entries []*ticket.AuditLog, md markdown.MarkdownService) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:          t.ID(),
		OrgID:       t.OrgID(),
		BatchID:     t.BatchID(),
		TemplateID:  t.TemplateID(),
		EventID:     t.EventID(),
		ShiftID:     t.ShiftID(),
		PersonID:    t.PersonID(),
		Name:        t.Name(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().Int(),
		AssignedTo:  t.AssignedTo(),
		ReporterID:  t.ReporterID(),
		Claimable:   t.Claimable(),
		CreatedAt:   t.CreatedAt(),
		ModifiedAt:  t.ModifiedAt(),
		CompletedAt: t.CompletedAt(),
	}

	if md != nil {
		if html, err := md.ToHTMLSanitized(t.Description()); err == nil {
			d.DescriptionHTML = html
		}
	}

	for _, a := range actions {
		d.Actions = append(d.Actions, ToActionDTO(a))
	}
	for _, e := range entries {
		d.AuditLog = append(d.AuditLog, ToAuditLogDTO(e))
	}

	return d
}

func ToActionDTO(a *ticket.Action) ActionDTO {
	return ActionDTO{
		ID:          a.ID(),
		Label:       a.Label(),
		ActionType:  a.ActionType().String(),
		RunMode:     a.RunMode().String(),
		ButtonColor: a.ButtonColor().String(),
		IsCompleted: a.IsCompleted(),
		CompletedAt: a.CompletedAt(),
	}
}

func ToAuditLogDTO(l *ticket.AuditLog) AuditLogDTO {
	return AuditLogDTO{
		ID:        l.ID(),
		EventType: l.EventType().String(),
		Message:   l.Message(),
		ActorID:   l.ActorID(),
		Success:   l.Success(),
		Metadata:  l.Metadata(),
		CreatedAt: l.CreatedAt(),
	}
}
