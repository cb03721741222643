package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

type ActionRepository struct {
	db     *gorm.DB
	mapper mappers.ActionMapper
}

func NewActionRepository(gdb *gorm.DB) *ActionRepository {
	return &ActionRepository{
		db:     gdb,
		mapper: mappers.NewActionMapper(),
	}
}

func (r *ActionRepository) SaveAll(ctx context.Context, actions []*ticket.Action) error {
	if len(actions) == 0 {
		return nil
	}

	rows := make([]*models.TicketActionModel, len(actions))
	for i, a := range actions {
		rows[i] = r.mapper.ToModel(a)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to save ticket actions: %w", err)
	}
	return nil
}

func (r *ActionRepository) Update(ctx context.Context, a *ticket.Action) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket action: %w", err)
	}
	return nil
}

func (r *ActionRepository) GetByID(ctx context.Context, actionID string) (*ticket.Action, error) {
	var model models.TicketActionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", actionID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket action not found")
		}
		return nil, fmt.Errorf("failed to find ticket action: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ActionRepository) ListByTicket(ctx context.Context, ticketID string) ([]*ticket.Action, error) {
	var rows []models.TicketActionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket actions: %w", err)
	}

	return r.toDomainAll(rows)
}

func (r *ActionRepository) ListIncompleteByRunMode(ctx context.Context, ticketID string, mode vo.RunMode) ([]*ticket.Action, error) {
	var rows []models.TicketActionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND run_mode = ? AND is_completed = ?", ticketID, mode.String(), false).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list incomplete actions: %w", err)
	}

	return r.toDomainAll(rows)
}

func (r *ActionRepository) ResetForTicket(ctx context.Context, ticketID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TicketActionModel{}).
		Where("ticket_id = ?", ticketID).
		Updates(map[string]any{
			"is_completed": false,
			"completed_at": nil,
			"modified_at":  time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to reset ticket actions: %w", err)
	}
	return nil
}

func (r *ActionRepository) toDomainAll(rows []models.TicketActionModel) ([]*ticket.Action, error) {
	actions := make([]*ticket.Action, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
