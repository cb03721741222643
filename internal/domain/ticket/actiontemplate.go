package ticket

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// ActionTemplate is the recipe for one action a ticket may expose. Its JSON
// config is validated against the action type at construction time so a bad
// recipe can never instantiate actions.
type ActionTemplate struct {
	id                  string
	slug                string
	actionType          vo.ActionType
	label               string
	description         string
	config              ActionConfig
	rawConfig           []byte
	updatesTicketStatus *vo.TicketStatus
	runMode             vo.RunMode
	buttonColor         vo.ButtonColor
	isActive            bool
	createdAt           time.Time
}

type NewActionTemplateParams struct {
	Slug                string
	ActionType          vo.ActionType
	Label               string
	Description         string
	Config              []byte
	UpdatesTicketStatus *vo.TicketStatus
	RunMode             vo.RunMode
	ButtonColor         vo.ButtonColor
}

func NewActionTemplate(p NewActionTemplateParams) (*ActionTemplate, error) {
	if p.Slug == "" {
		return nil, fmt.Errorf("action template slug is required")
	}
	if p.Label == "" {
		return nil, fmt.Errorf("action template label is required")
	}
	if !p.ActionType.IsValid() {
		return nil, fmt.Errorf("invalid action type: %s", p.ActionType)
	}
	if p.RunMode == "" {
		p.RunMode = vo.RunManual
	}
	if !p.RunMode.IsValid() {
		return nil, fmt.Errorf("invalid run mode: %s", p.RunMode)
	}
	if p.UpdatesTicketStatus != nil && !p.UpdatesTicketStatus.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", *p.UpdatesTicketStatus)
	}
	if p.ButtonColor == "" {
		p.ButtonColor = vo.ColorSecondary
	}

	cfg, err := ParseActionConfig(p.ActionType, p.Config)
	if err != nil {
		return nil, fmt.Errorf("action template %q: %w", p.Slug, err)
	}
	raw, err := EncodeActionConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &ActionTemplate{
		id:                  id.New(),
		slug:                p.Slug,
		actionType:          p.ActionType,
		label:               p.Label,
		description:         p.Description,
		config:              cfg,
		rawConfig:           raw,
		updatesTicketStatus: p.UpdatesTicketStatus,
		runMode:             p.RunMode,
		buttonColor:         p.ButtonColor,
		isActive:            true,
		createdAt:           time.Now(),
	}, nil
}

type ReconstructActionTemplateParams struct {
	ID                  string
	Slug                string
	ActionType          vo.ActionType
	Label               string
	Description         string
	Config              []byte
	UpdatesTicketStatus *vo.TicketStatus
	RunMode             vo.RunMode
	ButtonColor         vo.ButtonColor
	IsActive            bool
	CreatedAt           time.Time
}

func ReconstructActionTemplate(p ReconstructActionTemplateParams) (*ActionTemplate, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("action template ID is required")
	}
	if !p.ActionType.IsValid() {
		return nil, fmt.Errorf("invalid action type: %s", p.ActionType)
	}
	if !p.RunMode.IsValid() {
		return nil, fmt.Errorf("invalid run mode: %s", p.RunMode)
	}

	cfg, err := ParseActionConfig(p.ActionType, p.Config)
	if err != nil {
		return nil, fmt.Errorf("action template %q: %w", p.Slug, err)
	}

	return &ActionTemplate{
		id:                  p.ID,
		slug:                p.Slug,
		actionType:          p.ActionType,
		label:               p.Label,
		description:         p.Description,
		config:              cfg,
		rawConfig:           append([]byte(nil), p.Config...),
		updatesTicketStatus: p.UpdatesTicketStatus,
		runMode:             p.RunMode,
		buttonColor:         p.ButtonColor,
		isActive:            p.IsActive,
		createdAt:           p.CreatedAt,
	}, nil
}

func (at *ActionTemplate) ID() string                            { return at.id }
func (at *ActionTemplate) Slug() string                          { return at.slug }
func (at *ActionTemplate) ActionType() vo.ActionType             { return at.actionType }
func (at *ActionTemplate) Label() string                         { return at.label }
func (at *ActionTemplate) Description() string                   { return at.description }
func (at *ActionTemplate) Config() ActionConfig                  { return at.config }
func (at *ActionTemplate) UpdatesTicketStatus() *vo.TicketStatus { return at.updatesTicketStatus }
func (at *ActionTemplate) RunMode() vo.RunMode                   { return at.runMode }
func (at *ActionTemplate) ButtonColor() vo.ButtonColor           { return at.buttonColor }
func (at *ActionTemplate) IsActive() bool                        { return at.isActive }
func (at *ActionTemplate) CreatedAt() time.Time                  { return at.createdAt }

func (at *ActionTemplate) RawConfig() []byte {
	return append([]byte(nil), at.rawConfig...)
}
