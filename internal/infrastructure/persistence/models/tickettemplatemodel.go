package models

import "gorm.io/datatypes"

type TicketTemplateModel struct {
	ID                  string  `gorm:"primaryKey;size:36"`
	OrgID               *string `gorm:"size:36;index:idx_ticket_templates_org_name"`
	Name                string  `gorm:"size:200;not null;index:idx_ticket_templates_org_name"`
	NameTemplate        string  `gorm:"size:500;not null"`
	DescriptionTemplate string  `gorm:"type:text;not null"`
	DefaultPriority     int     `gorm:"not null;default:0"`
	Claimable           bool    `gorm:"not null;default:true"`
	MaxTickets          *int
	IsActive            bool  `gorm:"not null;default:true;index"`
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	ModifiedAt          int64 `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketTemplateModel) TableName() string {
	return "ticket_templates"
}

type ActionTemplateModel struct {
	ID                  string         `gorm:"primaryKey;size:36"`
	Slug                string         `gorm:"uniqueIndex;size:100;not null"`
	ActionType          string         `gorm:"size:50;not null"`
	Label               string         `gorm:"size:200;not null"`
	Description         string         `gorm:"type:text;not null"`
	Config              datatypes.JSON `gorm:"type:json"`
	UpdatesTicketStatus *string        `gorm:"size:20"`
	RunMode             string         `gorm:"size:20;not null"`
	ButtonColor         string         `gorm:"size:20;not null"`
	IsActive            bool           `gorm:"not null;default:true"`
	CreatedAt           int64          `gorm:"autoCreateTime:milli;not null"`
}

func (ActionTemplateModel) TableName() string {
	return "action_templates"
}

// TicketTemplateActionModel joins ticket templates to the action templates
// instantiated onto each generated ticket. Position preserves button order.
type TicketTemplateActionModel struct {
	ID               string `gorm:"primaryKey;size:36"`
	TicketTemplateID string `gorm:"size:36;not null;uniqueIndex:idx_template_action"`
	ActionTemplateID string `gorm:"size:36;not null;uniqueIndex:idx_template_action"`
	Position         int    `gorm:"not null;default:0"`
}

func (TicketTemplateActionModel) TableName() string {
	return "ticket_template_action_templates"
}
