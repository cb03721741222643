package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

type TagRepository struct {
	db     *gorm.DB
	mapper mappers.TagMapper
}

func NewTagRepository(gdb *gorm.DB) *TagRepository {
	return &TagRepository{
		db:     gdb,
		mapper: mappers.NewTagMapper(),
	}
}

// GetPreferringOrg resolves a tag by name, preferring one scoped to orgID
// over a global tag of the same name.
func (r *TagRepository) GetPreferringOrg(ctx context.Context, name, orgID string) (*person.Tag, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TagModel
	if err := tx.
		Where("name = ? AND (org_id = ? OR org_id IS NULL)", name, orgID).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to look up tag: %w", err)
	}

	var global *models.TagModel
	for i := range rows {
		if rows[i].OrgID != nil {
			return r.mapper.ToDomain(&rows[i])
		}
		global = &rows[i]
	}
	if global == nil {
		return nil, errors.NewNotFoundError("tag not found", name)
	}
	return r.mapper.ToDomain(global)
}

// GetOrCreatePreferringOrg is the create-capable variant: when no org-scoped
// or global tag matches, an org-scoped tag is created.
func (r *TagRepository) GetOrCreatePreferringOrg(ctx context.Context, name, orgID string) (*person.Tag, error) {
	tag, err := r.GetPreferringOrg(ctx, name, orgID)
	if err == nil {
		return tag, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, err
	}

	tag, err = person.NewTag(name, &orgID, "")
	if err != nil {
		return nil, err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(r.mapper.ToModel(tag)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			// Lost the race; the tag exists now.
			return r.GetPreferringOrg(ctx, name, orgID)
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// Attach tags the person. Attaching an already-attached tag is a no-op.
func (r *TagRepository) Attach(ctx context.Context, personID, tagID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	row := &models.TaggingModel{
		ID:       id.New(),
		PersonID: personID,
		TagID:    tagID,
	}
	if err := tx.Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to attach tag: %w", err)
	}
	return nil
}

// Detach removes the tagging. Detaching a missing tagging is a no-op.
func (r *TagRepository) Detach(ctx context.Context, personID, tagID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("person_id = ? AND tag_id = ?", personID, tagID).
		Delete(&models.TaggingModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}
	return nil
}

func (r *TagRepository) IsAttached(ctx context.Context, personID, tagID string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TaggingModel{}).
		Where("person_id = ? AND tag_id = ?", personID, tagID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tagging: %w", err)
	}
	return count > 0, nil
}
