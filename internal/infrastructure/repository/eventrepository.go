package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

type EventRepository struct {
	db     *gorm.DB
	mapper mappers.EventMapper
}

func NewEventRepository(gdb *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     gdb,
		mapper: mappers.NewEventMapper(),
	}
}

func (r *EventRepository) Save(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*event.Event, error) {
	var model models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", eventID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("event not found")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

type EventTemplateRepository struct {
	db     *gorm.DB
	mapper mappers.EventTemplateMapper
}

func NewEventTemplateRepository(gdb *gorm.DB) *EventTemplateRepository {
	return &EventTemplateRepository{
		db:     gdb,
		mapper: mappers.NewEventTemplateMapper(),
	}
}

// Save upserts the template row and replaces its ticket template
// attachments.
func (r *EventTemplateRepository) Save(ctx context.Context, t *event.Template) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save event template: %w", err)
		}

		if err := tx.Where("event_template_id = ?", t.ID()).
			Delete(&models.EventTemplateTicketTemplateModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear event template tickets: %w", err)
		}

		for i, ticketTemplateID := range t.TicketTemplateIDs() {
			row := &models.EventTemplateTicketTemplateModel{
				ID:               id.New(),
				EventTemplateID:  t.ID(),
				TicketTemplateID: ticketTemplateID,
				Position:         i,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to attach ticket template: %w", err)
			}
		}
		return nil
	})
}

func (r *EventTemplateRepository) GetByID(ctx context.Context, templateID string) (*event.Template, error) {
	var model models.EventTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", templateID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("event template not found")
		}
		return nil, fmt.Errorf("failed to find event template: %w", err)
	}

	return r.toDomain(ctx, &model)
}

func (r *EventTemplateRepository) GetByName(ctx context.Context, name string) (*event.Template, error) {
	var model models.EventTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("event template not found")
		}
		return nil, fmt.Errorf("failed to find event template: %w", err)
	}

	return r.toDomain(ctx, &model)
}

func (r *EventTemplateRepository) toDomain(ctx context.Context, model *models.EventTemplateModel) (*event.Template, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []string
	if err := tx.Model(&models.EventTemplateTicketTemplateModel{}).
		Where("event_template_id = ?", model.ID).
		Order("position ASC").
		Pluck("ticket_template_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load event template tickets: %w", err)
	}

	return r.mapper.ToDomain(model, ids)
}
