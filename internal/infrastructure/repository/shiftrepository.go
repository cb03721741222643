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
)

type ShiftRepository struct {
	db     *gorm.DB
	mapper mappers.ShiftMapper
}

func NewShiftRepository(gdb *gorm.DB) *ShiftRepository {
	return &ShiftRepository{
		db:     gdb,
		mapper: mappers.NewShiftMapper(),
	}
}

func (r *ShiftRepository) Save(ctx context.Context, s *event.Shift) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, shiftID string) (*event.Shift, error) {
	var model models.ShiftModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", shiftID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("shift not found")
		}
		return nil, fmt.Errorf("failed to find shift: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetOrCreateDefault returns the event's hidden default shift, creating it
// from the event's own time window when missing.
func (r *ShiftRepository) GetOrCreateDefault(ctx context.Context, eventID string) (*event.Shift, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ShiftModel
	err := tx.Where("event_id = ? AND is_default = ?", eventID, true).First(&model).Error
	if err == nil {
		return r.mapper.ToDomain(&model)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to find default shift: %w", err)
	}

	var eventModel models.EventModel
	if err := tx.Where("id = ?", eventID).First(&eventModel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("event not found")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	eventMapper := mappers.NewEventMapper()
	e, err := eventMapper.ToDomain(&eventModel)
	if err != nil {
		return nil, err
	}

	s, err := event.NewDefaultShift(e)
	if err != nil {
		return nil, err
	}
	if err := r.Save(ctx, s); err != nil {
		if errors.IsDuplicateError(err) {
			// Another writer created the default shift first; use theirs.
			return r.GetOrCreateDefault(ctx, eventID)
		}
		return nil, err
	}
	return s, nil
}

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
}

func NewAssignmentRepository(gdb *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     gdb,
		mapper: mappers.NewAssignmentMapper(),
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, a *event.ShiftAssignment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save shift assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) Update(ctx context.Context, a *event.ShiftAssignment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update shift assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) GetByShiftAndPerson(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
	var model models.ShiftAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("shift_id = ? AND person_id = ?", shiftID, personID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("shift assignment not found")
		}
		return nil, fmt.Errorf("failed to find shift assignment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssignmentRepository) ListForEvent(ctx context.Context, eventID string, filter event.AssignmentFilter) ([]*event.ShiftAssignment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	shifts := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.ShiftModel{}).
		Select("id").
		Where("event_id = ?", eventID)
	if filter.ShiftID != nil {
		shifts = shifts.Where("id = ?", *filter.ShiftID)
	} else if !filter.IncludeDefaultShift {
		shifts = shifts.Where("is_default = ?", false)
	}

	query := tx.Where("shift_id IN (?)", shifts)
	if len(filter.PersonIDs) > 0 {
		query = query.Where("person_id IN ?", filter.PersonIDs)
	}

	var rows []models.ShiftAssignmentModel
	if err := query.
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	assignments := make([]*event.ShiftAssignment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
