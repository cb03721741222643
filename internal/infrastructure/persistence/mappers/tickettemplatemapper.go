package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
)

// TicketTemplateMapper handles the conversion between ticket Template
// domain entities and persistence models. Attached action template IDs live
// in a join table and are loaded separately by the repository.
type TicketTemplateMapper interface {
	ToModel(t *ticket.Template) *models.TicketTemplateModel
	ToDomain(model *models.TicketTemplateModel, actionTemplateIDs []string) (*ticket.Template, error)
}

type TicketTemplateMapperImpl struct{}

func NewTicketTemplateMapper() TicketTemplateMapper {
	return &TicketTemplateMapperImpl{}
}

func (m *TicketTemplateMapperImpl) ToModel(t *ticket.Template) *models.TicketTemplateModel {
	return &models.TicketTemplateModel{
		ID:                  t.ID(),
		OrgID:               t.OrgID(),
		Name:                t.Name(),
		NameTemplate:        t.NameTemplate(),
		DescriptionTemplate: t.DescriptionTemplate(),
		DefaultPriority:     t.DefaultPriority().Int(),
		Claimable:           t.Claimable(),
		MaxTickets:          t.MaxTickets(),
		IsActive:            t.IsActive(),
		CreatedAt:           timeToMillis(t.CreatedAt()),
		ModifiedAt:          timeToMillis(t.ModifiedAt()),
	}
}

func (m *TicketTemplateMapperImpl) ToDomain(model *models.TicketTemplateModel, actionTemplateIDs []string) (*ticket.Template, error) {
	priority, err := vo.NewPriority(model.DefaultPriority)
	if err != nil {
		return nil, fmt.Errorf("ticket template %s: %w", model.ID, err)
	}

	return ticket.ReconstructTemplate(ticket.ReconstructTemplateParams{
		ID:                  model.ID,
		OrgID:               model.OrgID,
		Name:                model.Name,
		NameTemplate:        model.NameTemplate,
		DescriptionTemplate: model.DescriptionTemplate,
		ActionTemplateIDs:   actionTemplateIDs,
		DefaultPriority:     priority,
		Claimable:           model.Claimable,
		MaxTickets:          model.MaxTickets,
		IsActive:            model.IsActive,
		CreatedAt:           millisToTime(model.CreatedAt),
		ModifiedAt:          millisToTime(model.ModifiedAt),
	})
}

// ActionTemplateMapper handles the conversion between ActionTemplate domain
// entities and persistence models.
type ActionTemplateMapper interface {
	ToModel(at *ticket.ActionTemplate) *models.ActionTemplateModel
	ToDomain(model *models.ActionTemplateModel) (*ticket.ActionTemplate, error)
}

type ActionTemplateMapperImpl struct{}

func NewActionTemplateMapper() ActionTemplateMapper {
	return &ActionTemplateMapperImpl{}
}

func (m *ActionTemplateMapperImpl) ToModel(at *ticket.ActionTemplate) *models.ActionTemplateModel {
	var updatesStatus *string
	if at.UpdatesTicketStatus() != nil {
		s := at.UpdatesTicketStatus().String()
		updatesStatus = &s
	}

	return &models.ActionTemplateModel{
		ID:                  at.ID(),
		Slug:                at.Slug(),
		ActionType:          at.ActionType().String(),
		Label:               at.Label(),
		Description:         at.Description(),
		Config:              datatypes.JSON(at.RawConfig()),
		UpdatesTicketStatus: updatesStatus,
		RunMode:             at.RunMode().String(),
		ButtonColor:         at.ButtonColor().String(),
		IsActive:            at.IsActive(),
		CreatedAt:           timeToMillis(at.CreatedAt()),
	}
}

func (m *ActionTemplateMapperImpl) ToDomain(model *models.ActionTemplateModel) (*ticket.ActionTemplate, error) {
	actionType, err := vo.NewActionType(model.ActionType)
	if err != nil {
		return nil, fmt.Errorf("action template %s: %w", model.ID, err)
	}
	runMode, err := vo.NewRunMode(model.RunMode)
	if err != nil {
		return nil, fmt.Errorf("action template %s: %w", model.ID, err)
	}

	var updatesStatus *vo.TicketStatus
	if model.UpdatesTicketStatus != nil {
		s, err := vo.NewTicketStatus(*model.UpdatesTicketStatus)
		if err != nil {
			return nil, fmt.Errorf("action template %s: %w", model.ID, err)
		}
		updatesStatus = &s
	}

	return ticket.ReconstructActionTemplate(ticket.ReconstructActionTemplateParams{
		ID:                  model.ID,
		Slug:                model.Slug,
		ActionType:          actionType,
		Label:               model.Label,
		Description:         model.Description,
		Config:              []byte(model.Config),
		UpdatesTicketStatus: updatesStatus,
		RunMode:             runMode,
		ButtonColor:         vo.NormalizeButtonColor(model.ButtonColor),
		IsActive:            model.IsActive,
		CreatedAt:           millisToTime(model.CreatedAt),
	})
}
