package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/mappers"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/db"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(gdb *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:     gdb,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Save(ctx context.Context, o *org.Organization) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, orgID string) (*org.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", orgID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*org.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) ListBySlugs(ctx context.Context, slugs []string) ([]*org.Organization, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var rows []models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("slug IN ?", slugs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return r.toDomainAll(rows)
}

func (r *OrganizationRepository) ListAll(ctx context.Context) ([]*org.Organization, error) {
	var rows []models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return r.toDomainAll(rows)
}

func (r *OrganizationRepository) toDomainAll(rows []models.OrganizationModel) ([]*org.Organization, error) {
	orgs := make([]*org.Organization, 0, len(rows))
	for i := range rows {
		o, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, nil
}
