package mappers

import (
	"fmt"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		CreatedAt:   timeToMillis(t.CreatedAt()),
		ModifiedAt:  timeToMillis(t.ModifiedAt()),
		CompletedAt: timePtrToMillis(t.CompletedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(ticket.ReconstructTicketParams{
		ID:          model.ID,
		OrgID:       model.OrgID,
		BatchID:     model.BatchID,
		TemplateID:  model.TemplateID,
		EventID:     model.EventID,
		ShiftID:     model.ShiftID,
		PersonID:    model.PersonID,
		Name:        model.Name,
		Description: model.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  model.AssignedTo,
		ReporterID:  model.ReporterID,
		Claimable:   model.Claimable,
		CreatedAt:   millisToTime(model.CreatedAt),
		ModifiedAt:  millisToTime(model.ModifiedAt),
		CompletedAt: millisPtrToTime(model.CompletedAt),
	})
}

// BatchMapper handles the conversion between Batch domain entities and
// persistence models.
type BatchMapper interface {
	ToModel(b *ticket.Batch) *models.TicketBatchModel
	ToDomain(model *models.TicketBatchModel) (*ticket.Batch, error)
}

type BatchMapperImpl struct{}

func NewBatchMapper() BatchMapper {
	return &BatchMapperImpl{}
}

func (m *BatchMapperImpl) ToModel(b *ticket.Batch) *models.TicketBatchModel {
	return &models.TicketBatchModel{
		ID:              b.ID(),
		OrgID:           b.OrgID(),
		EventID:         b.EventID(),
		ShiftID:         b.ShiftID(),
		Name:            b.Name(),
		Reason:          b.Reason(),
		Claimable:       b.Claimable(),
		DefaultPriority: b.DefaultPriority().Int(),
		CreatedBy:       b.CreatedBy(),
		CreatedAt:       timeToMillis(b.CreatedAt()),
	}
}

func (m *BatchMapperImpl) ToDomain(model *models.TicketBatchModel) (*ticket.Batch, error) {
	priority, err := vo.NewPriority(model.DefaultPriority)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", model.ID, err)
	}

	return ticket.ReconstructBatch(
		model.ID,
		model.OrgID,
		model.EventID,
		model.ShiftID,
		model.Name,
		model.Reason,
		model.Claimable,
		priority,
		model.CreatedBy,
		millisToTime(model.CreatedAt),
	)
}
