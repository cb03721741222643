package mappers

import (
	"fmt"

	"github.com/libdough/openvolunteer/internal/domain/event"
	vo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
)

// EventMapper handles the conversion between Event domain entities and
// persistence models.
type EventMapper interface {
	ToModel(e *event.Event) *models.EventModel
	ToDomain(model *models.EventModel) (*event.Event, error)
}

type EventMapperImpl struct{}

func NewEventMapper() EventMapper {
	return &EventMapperImpl{}
}

func (m *EventMapperImpl) ToModel(e *event.Event) *models.EventModel {
	return &models.EventModel{
		ID:              e.ID(),
		OrgID:           e.OrgID(),
		Title:           e.Title(),
		Status:          e.Status().String(),
		EventType:       e.EventType().String(),
		TemplateID:      e.TemplateID(),
		StartsAt:        timeToMillis(e.StartsAt()),
		EndsAt:          timeToMillis(e.EndsAt()),
		LocationName:    e.LocationName(),
		LocationAddress: e.LocationAddress(),
		Description:     e.Description(),
		OwnerName:       e.OwnerName(),
		CreatedBy:       e.CreatedBy(),
		CreatedAt:       timeToMillis(e.CreatedAt()),
	}
}

func (m *EventMapperImpl) ToDomain(model *models.EventModel) (*event.Event, error) {
	status, err := vo.NewEventStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", model.ID, err)
	}
	eventType, err := vo.NewEventType(model.EventType)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", model.ID, err)
	}

	return event.ReconstructEvent(
		model.ID,
		model.OrgID,
		model.Title,
		status,
		eventType,
		model.TemplateID,
		millisToTime(model.StartsAt),
		millisToTime(model.EndsAt),
		model.LocationName,
		model.LocationAddress,
		model.Description,
		model.OwnerName,
		model.CreatedBy,
		millisToTime(model.CreatedAt),
	)
}

// EventTemplateMapper handles event Template conversions. Attached ticket
// template IDs live in a join table and are loaded separately.
type EventTemplateMapper interface {
	ToModel(t *event.Template) *models.EventTemplateModel
	ToDomain(model *models.EventTemplateModel, ticketTemplateIDs []string) (*event.Template, error)
}

type EventTemplateMapperImpl struct{}

func NewEventTemplateMapper() EventTemplateMapper {
	return &EventTemplateMapperImpl{}
}

func (m *EventTemplateMapperImpl) ToModel(t *event.Template) *models.EventTemplateModel {
	return &models.EventTemplateModel{
		ID:        t.ID(),
		Name:      t.Name(),
		CreatedAt: timeToMillis(t.CreatedAt()),
	}
}

func (m *EventTemplateMapperImpl) ToDomain(model *models.EventTemplateModel, ticketTemplateIDs []string) (*event.Template, error) {
	return event.ReconstructTemplate(
		model.ID,
		model.Name,
		ticketTemplateIDs,
		millisToTime(model.CreatedAt),
	)
}

// ShiftMapper handles Shift conversions.
type ShiftMapper interface {
	ToModel(s *event.Shift) *models.ShiftModel
	ToDomain(model *models.ShiftModel) (*event.Shift, error)
}

type ShiftMapperImpl struct{}

func NewShiftMapper() ShiftMapper {
	return &ShiftMapperImpl{}
}

func (m *ShiftMapperImpl) ToModel(s *event.Shift) *models.ShiftModel {
	return &models.ShiftModel{
		ID:        s.ID(),
		EventID:   s.EventID(),
		Name:      s.Name(),
		StartsAt:  timeToMillis(s.StartsAt()),
		EndsAt:    timeToMillis(s.EndsAt()),
		Capacity:  s.Capacity(),
		IsDefault: s.IsDefault(),
		CreatedAt: timeToMillis(s.CreatedAt()),
	}
}

func (m *ShiftMapperImpl) ToDomain(model *models.ShiftModel) (*event.Shift, error) {
	return event.ReconstructShift(
		model.ID,
		model.EventID,
		model.Name,
		millisToTime(model.StartsAt),
		millisToTime(model.EndsAt),
		model.Capacity,
		model.IsDefault,
		millisToTime(model.CreatedAt),
	)
}

// AssignmentMapper handles ShiftAssignment conversions.
type AssignmentMapper interface {
	ToModel(a *event.ShiftAssignment) *models.ShiftAssignmentModel
	ToDomain(model *models.ShiftAssignmentModel) (*event.ShiftAssignment, error)
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToModel(a *event.ShiftAssignment) *models.ShiftAssignmentModel {
	return &models.ShiftAssignmentModel{
		ID:          a.ID(),
		ShiftID:     a.ShiftID(),
		PersonID:    a.PersonID(),
		Status:      a.Status().String(),
		AssignedBy:  a.AssignedBy(),
		CheckedInAt: timePtrToMillis(a.CheckedInAt()),
		CreatedAt:   timeToMillis(a.CreatedAt()),
	}
}

func (m *AssignmentMapperImpl) ToDomain(model *models.ShiftAssignmentModel) (*event.ShiftAssignment, error) {
	status, err := vo.NewAssignmentStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("shift assignment %s: %w", model.ID, err)
	}

	return event.ReconstructShiftAssignment(
		model.ID,
		model.ShiftID,
		model.PersonID,
		status,
		model.AssignedBy,
		millisPtrToTime(model.CheckedInAt),
		millisToTime(model.CreatedAt),
	)
}
