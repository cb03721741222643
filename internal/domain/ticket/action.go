package ticket

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Action is one instantiated, possibly-executable action attached to a
// ticket. Run mode, label, type and config are copied from the originating
// action template at creation time and immutable afterwards; only the
// completion state changes.
type Action struct {
	id                  string
	ticketID            string
	templateID          *string
	actionType          vo.ActionType
	runMode             vo.RunMode
	buttonColor         vo.ButtonColor
	updatesTicketStatus *vo.TicketStatus
	label               string
	config              ActionConfig
	rawConfig           []byte
	isCompleted         bool
	completedAt         *time.Time
	createdAt           time.Time
	modifiedAt          time.Time
}

// NewActionFromTemplate instantiates an action onto a ticket from its
// template, re-parsing the config so a template corrupted after validation
// still cannot produce an unexecutable action.
func NewActionFromTemplate(ticketID string, tmpl *ActionTemplate) (*Action, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if tmpl == nil {
		return nil, fmt.Errorf("action template is required")
	}

	cfg, err := ParseActionConfig(tmpl.ActionType(), tmpl.RawConfig())
	if err != nil {
		return nil, err
	}

	templateID := tmpl.ID()
	now := time.Now()
	return &Action{
		id:                  id.New(),
		ticketID:            ticketID,
		templateID:          &templateID,
		actionType:          tmpl.ActionType(),
		runMode:             tmpl.RunMode(),
		buttonColor:         tmpl.ButtonColor(),
		updatesTicketStatus: tmpl.UpdatesTicketStatus(),
		label:               tmpl.Label(),
		config:              cfg,
		rawConfig:           tmpl.RawConfig(),
		createdAt:           now,
		modifiedAt:          now,
	}, nil
}

type ReconstructActionParams struct {
	ID                  string
	TicketID            string
	TemplateID          *string
	ActionType          vo.ActionType
	RunMode             vo.RunMode
	ButtonColor         vo.ButtonColor
	UpdatesTicketStatus *vo.TicketStatus
	Label               string
	Config              []byte
	IsCompleted         bool
	CompletedAt         *time.Time
	CreatedAt           time.Time
	ModifiedAt          time.Time
}

func ReconstructAction(p ReconstructActionParams) (*Action, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("action ID is required")
	}
	if p.TicketID == "" {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !p.ActionType.IsValid() {
		return nil, fmt.Errorf("invalid action type: %s", p.ActionType)
	}
	if !p.RunMode.IsValid() {
		return nil, fmt.Errorf("invalid run mode: %s", p.RunMode)
	}

	cfg, err := ParseActionConfig(p.ActionType, p.Config)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", p.ID, err)
	}

	return &Action{
		id:                  p.ID,
		ticketID:            p.TicketID,
		templateID:          p.TemplateID,
		actionType:          p.ActionType,
		runMode:             p.RunMode,
		buttonColor:         p.ButtonColor,
		updatesTicketStatus: p.UpdatesTicketStatus,
		label:               p.Label,
		config:              cfg,
		rawConfig:           append([]byte(nil), p.Config...),
		isCompleted:         p.IsCompleted,
		completedAt:         p.CompletedAt,
		createdAt:           p.CreatedAt,
		modifiedAt:          p.ModifiedAt,
	}, nil
}

func (a *Action) ID() string                            { return a.id }
func (a *Action) TicketID() string                      { return a.ticketID }
func (a *Action) TemplateID() *string                   { return a.templateID }
func (a *Action) ActionType() vo.ActionType             { return a.actionType }
func (a *Action) RunMode() vo.RunMode                   { return a.runMode }
func (a *Action) ButtonColor() vo.ButtonColor           { return a.buttonColor }
func (a *Action) UpdatesTicketStatus() *vo.TicketStatus { return a.updatesTicketStatus }
func (a *Action) Label() string                         { return a.label }
func (a *Action) Config() ActionConfig                  { return a.config }
func (a *Action) IsCompleted() bool                     { return a.isCompleted }
func (a *Action) CompletedAt() *time.Time               { return a.completedAt }
func (a *Action) CreatedAt() time.Time                  { return a.createdAt }
func (a *Action) ModifiedAt() time.Time                 { return a.modifiedAt }

func (a *Action) RawConfig() []byte {
	return append([]byte(nil), a.rawConfig...)
}

// MarkCompleted transitions the action to its terminal state. Completion is
// final; only the ticket-level unclaim reset can revert it.
func (a *Action) MarkCompleted() error {
	if a.isCompleted {
		return fmt.Errorf("action is already completed")
	}
	now := time.Now()
	a.isCompleted = true
	a.completedAt = &now
	a.modifiedAt = now
	return nil
}

// Reset returns the action to pending. Used when its ticket is unclaimed so
// the next claimer can restart the work.
func (a *Action) Reset() {
	a.isCompleted = false
	a.completedAt = nil
	a.modifiedAt = time.Now()
}
