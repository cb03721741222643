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
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

type BatchRepository struct {
	db     *gorm.DB
	mapper mappers.BatchMapper
}

func NewBatchRepository(gdb *gorm.DB) *BatchRepository {
	return &BatchRepository{
		db:     gdb,
		mapper: mappers.NewBatchMapper(),
	}
}

func (r *BatchRepository) Save(ctx context.Context, b *ticket.Batch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket batch: %w", err)
	}
	return nil
}

func (r *BatchRepository) GetByID(ctx context.Context, batchID string) (*ticket.Batch, error) {
	var model models.TicketBatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", batchID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket batch not found")
		}
		return nil, fmt.Errorf("failed to find ticket batch: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BatchRepository) Delete(ctx context.Context, batchID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", batchID).Delete(&models.TicketBatchModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket batch: %w", err)
	}
	return nil
}

func (r *BatchRepository) DeleteDangling(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// A batch is dangling when it has no open tickets left: every ticket is
	// closed or the batch is empty.
	openTickets := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.TicketModel{}).
		Select("batch_id").
		Where("batch_id IS NOT NULL").
		Where("status NOT IN ?", statusStrings(vo.ClosedStatuses()))

	result := tx.Where("id NOT IN (?)", openTickets).Delete(&models.TicketBatchModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete dangling batches: %w", result.Error)
	}
	return result.RowsAffected, nil
}
