package usecases

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type DeleteDanglingBatchesCommand struct{}

type DeleteDanglingBatchesResult struct {
	Deleted int64
}

// DeleteDanglingBatchesUseCase drops batches that no longer hold any live
// work: empty batches and batches whose every ticket is closed.
type DeleteDanglingBatchesUseCase struct {
	batchRepo ticket.BatchRepository
	logger    logger.Interface
}

func NewDeleteDanglingBatchesUseCase(batchRepo ticket.BatchRepository, logger logger.Interface) *DeleteDanglingBatchesUseCase {
	return &DeleteDanglingBatchesUseCase{batchRepo: batchRepo, logger: logger}
}

func (uc *DeleteDanglingBatchesUseCase) Execute(ctx context.Context, _ DeleteDanglingBatchesCommand) (*DeleteDanglingBatchesResult, error) {
	count, err := uc.batchRepo.DeleteDangling(ctx)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		uc.logger.Infow("deleted dangling batches", "count", count)
	}
	return &DeleteDanglingBatchesResult{Deleted: count}, nil
}
