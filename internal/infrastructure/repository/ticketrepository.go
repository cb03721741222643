package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	evo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes every column so cleared pointers (assignee, completion
	// time) are persisted as NULL, which Updates would skip.
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketActionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket actions: %w", err)
		}
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketAuditLogModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket audit logs: %w", err)
		}
		if err := tx.Where("id = ?", ticketID).Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
}

func (r *TicketRepository) ExistsForTemplateAndPerson(ctx context.Context, templateID, orgID, personID string, eventID *string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).
		Where("template_id = ? AND org_id = ? AND person_id = ?", templateID, orgID, personID)
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	} else {
		query = query.Where("event_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check for existing ticket: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) CountInBatch(ctx context.Context, batchID string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("batch_id = ?", batchID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count batch tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CancelWhereStale(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time, target vo.TicketStatus) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.Model(&models.TicketModel{}).
		Where("status IN ? AND modified_at < ?", statusStrings(statuses), cutoff.UnixMilli()).
		Updates(map[string]any{
			"status":      target.String(),
			"assigned_to": nil,
			"modified_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cancel stale tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) CancelForCanceledEvents(ctx context.Context, cutoff time.Time, target vo.TicketStatus) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	result := tx.Model(&models.TicketModel{}).
		Where("status NOT IN ?", statusStrings(vo.ClosedStatuses())).
		Where("modified_at < ?", cutoff.UnixMilli()).
		Where("event_id IN (?)", tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.EventModel{}).
			Select("id").
			Where("status = ?", evo.EventCanceled.String())).
		Updates(map[string]any{
			"status":      target.String(),
			"assigned_to": nil,
			"modified_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cancel tickets for canceled events: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) DeleteClosedBefore(ctx context.Context, statuses []vo.TicketStatus, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var deleted int64
	err := tx.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&models.TicketModel{}).
			Where("status IN ? AND modified_at < ?", statusStrings(statuses), cutoff.UnixMilli()).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to list expired tickets: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("ticket_id IN ?", ids).Delete(&models.TicketActionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete expired ticket actions: %w", err)
		}
		if err := tx.Where("ticket_id IN ?", ids).Delete(&models.TicketAuditLogModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete expired ticket audit logs: %w", err)
		}

		result := tx.Where("id IN ?", ids).Delete(&models.TicketModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete expired tickets: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

func statusStrings(statuses []vo.TicketStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
