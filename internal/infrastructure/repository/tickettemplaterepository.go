package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

type TicketTemplateRepository struct {
	db           *gorm.DB
	mapper       mappers.TicketTemplateMapper
	actionMapper mappers.ActionTemplateMapper
}

func NewTicketTemplateRepository(gdb *gorm.DB) *TicketTemplateRepository {
	return &TicketTemplateRepository{
		db:           gdb,
		mapper:       mappers.NewTicketTemplateMapper(),
		actionMapper: mappers.NewActionTemplateMapper(),
	}
}

// SaveTemplate upserts the template row and replaces its action template
// attachments so the join table always mirrors the entity.
func (r *TicketTemplateRepository) SaveTemplate(ctx context.Context, t *ticket.Template) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket template: %w", err)
		}

		if err := tx.Where("ticket_template_id = ?", t.ID()).
			Delete(&models.TicketTemplateActionModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear template actions: %w", err)
		}

		for i, actionTemplateID := range t.ActionTemplateIDs() {
			row := &models.TicketTemplateActionModel{
				ID:               id.New(),
				TicketTemplateID: t.ID(),
				ActionTemplateID: actionTemplateID,
				Position:         i,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to attach action template: %w", err)
			}
		}
		return nil
	})
}

func (r *TicketTemplateRepository) GetTemplateByID(ctx context.Context, templateID string) (*ticket.Template, error) {
	var model models.TicketTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", templateID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewTemplateNotFoundError("ticket template not found")
		}
		return nil, fmt.Errorf("failed to find ticket template: %w", err)
	}

	return r.toDomain(ctx, &model)
}

func (r *TicketTemplateRepository) GetTemplateByName(ctx context.Context, name string, orgID *string) (*ticket.Template, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("name = ?", name)
	if orgID != nil {
		query = query.Where("org_id = ?", *orgID)
	} else {
		query = query.Where("org_id IS NULL")
	}

	var model models.TicketTemplateModel
	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewTemplateNotFoundError("ticket template not found")
		}
		return nil, fmt.Errorf("failed to find ticket template: %w", err)
	}

	return r.toDomain(ctx, &model)
}

// GetTemplateForOrg resolves name preferring an org-scoped template over a
// global one of the same name.
func (r *TicketTemplateRepository) GetTemplateForOrg(ctx context.Context, name, orgID string) (*ticket.Template, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketTemplateModel
	if err := tx.
		Where("name = ? AND (org_id = ? OR org_id IS NULL)", name, orgID).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up ticket template: %w", err)
	}

	var global *models.TicketTemplateModel
	for i := range rows {
		if rows[i].OrgID != nil {
			return r.toDomain(ctx, &rows[i])
		}
		global = &rows[i]
	}
	if global == nil {
		return nil, errors.NewTemplateNotFoundError("ticket template not found", name)
	}
	return r.toDomain(ctx, global)
}

func (r *TicketTemplateRepository) ListActiveTemplatesByIDs(ctx context.Context, templateIDs []string) ([]*ticket.Template, error) {
	if len(templateIDs) == 0 {
		return nil, nil
	}

	var rows []models.TicketTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ? AND is_active = ?", templateIDs, true).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket templates: %w", err)
	}

	templates := make([]*ticket.Template, 0, len(rows))
	for i := range rows {
		t, err := r.toDomain(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (r *TicketTemplateRepository) SaveActionTemplate(ctx context.Context, at *ticket.ActionTemplate) error {
	model := r.actionMapper.ToModel(at)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to save action template: %w", err)
	}
	return nil
}

func (r *TicketTemplateRepository) GetActionTemplateBySlug(ctx context.Context, slug string) (*ticket.ActionTemplate, error) {
	var model models.ActionTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("action template not found")
		}
		return nil, fmt.Errorf("failed to find action template: %w", err)
	}

	return r.actionMapper.ToDomain(&model)
}

// ListActionTemplates returns the active action templates attached to a
// ticket template in attachment order.
func (r *TicketTemplateRepository) ListActionTemplates(ctx context.Context, templateID string) ([]*ticket.ActionTemplate, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var joins []models.TicketTemplateActionModel
	if err := tx.
		Where("ticket_template_id = ?", templateID).
		Order("position ASC").
		Find(&joins).Error; err != nil {
		return nil, fmt.Errorf("failed to list template actions: %w", err)
	}
	if len(joins) == 0 {
		return nil, nil
	}

	ids := make([]string, len(joins))
	for i, j := range joins {
		ids[i] = j.ActionTemplateID
	}

	var rows []models.ActionTemplateModel
	if err := tx.Where("id IN ? AND is_active = ?", ids, true).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list action templates: %w", err)
	}

	byID := make(map[string]*models.ActionTemplateModel, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}

	templates := make([]*ticket.ActionTemplate, 0, len(rows))
	for _, attachedID := range ids {
		model, ok := byID[attachedID]
		if !ok {
			continue
		}
		at, err := r.actionMapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		templates = append(templates, at)
	}
	return templates, nil
}

func (r *TicketTemplateRepository) toDomain(ctx context.Context, model *models.TicketTemplateModel) (*ticket.Template, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []string
	if err := tx.Model(&models.TicketTemplateActionModel{}).
		Where("ticket_template_id = ?", model.ID).
		Order("position ASC").
		Pluck("action_template_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load template actions: %w", err)
	}

	return r.mapper.ToDomain(model, ids)
}
