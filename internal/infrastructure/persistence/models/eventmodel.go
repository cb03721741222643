package models

type EventModel struct {
	ID              string  `gorm:"primaryKey;size:36"`
	OrgID           string  `gorm:"size:36;not null;index"`
	Title           string  `gorm:"size:300;not null"`
	Status          string  `gorm:"size:20;not null;index"`
	EventType       string  `gorm:"size:50;not null"`
	TemplateID      *string `gorm:"size:36;index"`
	StartsAt        int64   `gorm:"not null;index"`
	EndsAt          int64   `gorm:"not null"`
	LocationName    string  `gorm:"size:300"`
	LocationAddress string  `gorm:"size:500"`
	Description     string  `gorm:"type:text"`
	OwnerName       string  `gorm:"size:200"`
	CreatedBy       *string `gorm:"size:36"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (EventModel) TableName() string {
	return "events"
}

type EventTemplateModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"uniqueIndex;size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (EventTemplateModel) TableName() string {
	return "event_templates"
}

// EventTemplateTicketTemplateModel joins event templates to the ticket
// templates generated for events built from them.
type EventTemplateTicketTemplateModel struct {
	ID               string `gorm:"primaryKey;size:36"`
	EventTemplateID  string `gorm:"size:36;not null;uniqueIndex:idx_event_ticket_template"`
	TicketTemplateID string `gorm:"size:36;not null;uniqueIndex:idx_event_ticket_template"`
	Position         int    `gorm:"not null;default:0"`
}

func (EventTemplateTicketTemplateModel) TableName() string {
	return "event_template_ticket_templates"
}

type ShiftModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	EventID   string `gorm:"size:36;not null;index"`
	Name      string `gorm:"size:200;not null"`
	StartsAt  int64  `gorm:"not null"`
	EndsAt    int64  `gorm:"not null"`
	Capacity  int    `gorm:"not null;default:0"`
	IsDefault bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ShiftModel) TableName() string {
	return "shifts"
}

type ShiftAssignmentModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	ShiftID     string  `gorm:"size:36;not null;uniqueIndex:idx_shift_person"`
	PersonID    string  `gorm:"size:36;not null;uniqueIndex:idx_shift_person"`
	Status      string  `gorm:"size:20;not null;index"`
	AssignedBy  *string `gorm:"size:36"`
	CheckedInAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ShiftAssignmentModel) TableName() string {
	return "shift_assignments"
}
