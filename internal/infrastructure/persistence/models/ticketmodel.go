package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	OrgID       string  `gorm:"size:36;not null;index"`
	BatchID     *string `gorm:"size:36;index"`
	TemplateID  *string `gorm:"size:36;index"`
	EventID     *string `gorm:"size:36;index"`
	ShiftID     *string `gorm:"size:36;index"`
	PersonID    *string `gorm:"size:36;index"`
	Name        string  `gorm:"size:300;not null"`
	Description string  `gorm:"type:text;not null"`
	Status      string  `gorm:"size:20;not null;index"`
	Priority    int     `gorm:"not null;default:0"`
	AssignedTo  *string `gorm:"size:36;index"`
	ReporterID  *string `gorm:"size:36"`
	Claimable   bool    `gorm:"not null;default:false"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	ModifiedAt  int64   `gorm:"not null;index"`
	CompletedAt *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketBatchModel struct {
	ID              string  `gorm:"primaryKey;size:36"`
	OrgID           string  `gorm:"size:36;not null;index"`
	EventID         *string `gorm:"size:36;index"`
	ShiftID         *string `gorm:"size:36"`
	Name            string  `gorm:"size:300;not null"`
	Reason          string  `gorm:"size:200;not null"`
	Claimable       bool    `gorm:"not null;default:false"`
	DefaultPriority int     `gorm:"not null;default:0"`
	CreatedBy       *string `gorm:"size:36"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
}

func (TicketBatchModel) TableName() string {
	return "ticket_batches"
}

type TicketActionModel struct {
	ID                  string         `gorm:"primaryKey;size:36"`
	TicketID            string         `gorm:"size:36;not null;index"`
	TemplateID          *string        `gorm:"size:36"`
	ActionType          string         `gorm:"size:50;not null"`
	RunMode             string         `gorm:"size:20;not null;index"`
	ButtonColor         string         `gorm:"size:20;not null"`
	UpdatesTicketStatus *string        `gorm:"size:20"`
	Label               string         `gorm:"size:200;not null"`
	Config              datatypes.JSON `gorm:"type:json"`
	IsCompleted         bool           `gorm:"not null;default:false"`
	CompletedAt         *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	ModifiedAt          int64 `gorm:"not null"`
}

func (TicketActionModel) TableName() string {
	return "ticket_actions"
}

type TicketAuditLogModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	TicketID  string         `gorm:"size:36;not null;index"`
	EventType string         `gorm:"size:50;not null;index"`
	Message   string         `gorm:"type:text;not null"`
	ActorID   *string        `gorm:"size:36"`
	Success   bool           `gorm:"not null;default:true"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketAuditLogModel) TableName() string {
	return "ticket_audit_logs"
}
