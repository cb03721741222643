package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
)

// ActionMapper handles the conversion between Action domain entities and
// persistence models.
type ActionMapper interface {
	ToModel(a *ticket.Action) *models.TicketActionModel
	ToDomain(model *models.TicketActionModel) (*ticket.Action, error)
}

type ActionMapperImpl struct{}

func NewActionMapper() ActionMapper {
	return &ActionMapperImpl{}
}

func (m *ActionMapperImpl) ToModel(a *ticket.Action) *models.TicketActionModel {
	var updatesStatus *string
	if a.UpdatesTicketStatus() != nil {
		s := a.UpdatesTicketStatus().String()
		updatesStatus = &s
	}

	return &models.TicketActionModel{
		ID:                  a.ID(),
		TicketID:            a.TicketID(),
		TemplateID:          a.TemplateID(),
		ActionType:          a.ActionType().String(),
		RunMode:             a.RunMode().String(),
		ButtonColor:         a.ButtonColor().String(),
		UpdatesTicketStatus: updatesStatus,
		Label:               a.Label(),
		Config:              datatypes.JSON(a.RawConfig()),
		IsCompleted:         a.IsCompleted(),
		CompletedAt:         timePtrToMillis(a.CompletedAt()),
		CreatedAt:           timeToMillis(a.CreatedAt()),
		ModifiedAt:          timeToMillis(a.ModifiedAt()),
	}
}

func (m *ActionMapperImpl) ToDomain(model *models.TicketActionModel) (*ticket.Action, error) {
	actionType, err := vo.NewActionType(model.ActionType)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", model.ID, err)
	}
	runMode, err := vo.NewRunMode(model.RunMode)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", model.ID, err)
	}

	var updatesStatus *vo.TicketStatus
	if model.UpdatesTicketStatus != nil {
		s, err := vo.NewTicketStatus(*model.UpdatesTicketStatus)
		if err != nil {
			return nil, fmt.Errorf("action %s: %w", model.ID, err)
		}
		updatesStatus = &s
	}

	return ticket.ReconstructAction(ticket.ReconstructActionParams{
		ID:                  model.ID,
		TicketID:            model.TicketID,
		TemplateID:          model.TemplateID,
		ActionType:          actionType,
		RunMode:             runMode,
		ButtonColor:         vo.NormalizeButtonColor(model.ButtonColor),
		UpdatesTicketStatus: updatesStatus,
		Label:               model.Label,
		Config:              []byte(model.Config),
		IsCompleted:         model.IsCompleted,
		CompletedAt:         millisPtrToTime(model.CompletedAt),
		CreatedAt:           millisToTime(model.CreatedAt),
		ModifiedAt:          millisToTime(model.ModifiedAt),
	})
}

// AuditLogMapper handles the conversion between AuditLog domain entities
// and persistence models.
type AuditLogMapper interface {
	ToModel(l *ticket.AuditLog) *models.TicketAuditLogModel
	ToDomain(model *models.TicketAuditLogModel) (*ticket.AuditLog, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(l *ticket.AuditLog) *models.TicketAuditLogModel {
	model := &models.TicketAuditLogModel{
		ID:        l.ID(),
		TicketID:  l.TicketID(),
		EventType: l.EventType().String(),
		Message:   l.Message(),
		ActorID:   l.ActorID(),
		Success:   l.Success(),
		CreatedAt: timeToMillis(l.CreatedAt()),
	}

	if meta := l.Metadata(); len(meta) > 0 {
		raw, _ := json.Marshal(meta)
		model.Metadata = datatypes.JSON(raw)
	}

	return model
}

func (m *AuditLogMapperImpl) ToDomain(model *models.TicketAuditLogModel) (*ticket.AuditLog, error) {
	eventType, err := vo.NewAuditEvent(model.EventType)
	if err != nil {
		return nil, fmt.Errorf("audit log %s: %w", model.ID, err)
	}

	var metadata map[string]any
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("audit log %s: failed to unmarshal metadata: %w", model.ID, err)
		}
	}

	return ticket.ReconstructAuditLog(
		model.ID,
		model.TicketID,
		eventType,
		model.Message,
		model.ActorID,
		model.Success,
		metadata,
		millisToTime(model.CreatedAt),
	)
}
