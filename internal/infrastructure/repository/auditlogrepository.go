package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
)

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(gdb *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     gdb,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *ticket.AuditLog) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) ListByTicket(ctx context.Context, ticketID string) ([]*ticket.AuditLog, error) {
	var rows []models.TicketAuditLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	entries := make([]*ticket.AuditLog, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *AuditLogRepository) CountByTicketAndType(ctx context.Context, ticketID string, eventType vo.AuditEvent) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketAuditLogModel{}).
		Where("ticket_id = ? AND event_type = ?", ticketID, eventType.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	return count, nil
}
