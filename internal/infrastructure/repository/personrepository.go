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

type PersonRepository struct {
	db     *gorm.DB
	mapper mappers.PersonMapper
}

func NewPersonRepository(gdb *gorm.DB) *PersonRepository {
	return &PersonRepository{
		db:     gdb,
		mapper: mappers.NewPersonMapper(),
	}
}

func (r *PersonRepository) Save(ctx context.Context, p *person.Person) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

func (r *PersonRepository) GetByID(ctx context.Context, personID string) (*person.Person, error) {
	var model models.PersonModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", personID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("person not found")
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListWithTag returns the people in orgID carrying the named tag, whether
// the tag is scoped to that org or global.
func (r *PersonRepository) ListWithTag(ctx context.Context, tagName, orgID string, limit int) ([]*person.Person, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	tags := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.TagModel{}).
		Select("id").
		Where("name = ? AND (org_id = ? OR org_id IS NULL)", tagName, orgID)

	tagged := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.TaggingModel{}).
		Select("person_id").
		Where("tag_id IN (?)", tags)

	members := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.PersonOrgModel{}).
		Select("person_id").
		Where("org_id = ?", orgID)

	query := tx.
		Where("id IN (?)", tagged).
		Where("id IN (?)", members).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.PersonModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list people with tag: %w", err)
	}

	people := make([]*person.Person, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

// LinkToOrg makes the person a member of the org. Linking twice is a no-op.
func (r *PersonRepository) LinkToOrg(ctx context.Context, personID, orgID, role string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	row := &models.PersonOrgModel{
		ID:       id.New(),
		PersonID: personID,
		OrgID:    orgID,
		Role:     role,
	}
	if err := tx.Create(row).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to link person to org: %w", err)
	}
	return nil
}
