package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
)

// OrganizationMapper handles Organization conversions.
type OrganizationMapper interface {
	ToModel(o *org.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*org.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(o *org.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:        o.ID(),
		Name:      o.Name(),
		Slug:      o.Slug(),
		CreatedAt: timeToMillis(o.CreatedAt()),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*org.Organization, error) {
	return org.ReconstructOrganization(model.ID, model.Name, model.Slug, millisToTime(model.CreatedAt))
}

// PersonMapper handles Person conversions.
type PersonMapper interface {
	ToModel(p *person.Person) *models.PersonModel
	ToDomain(model *models.PersonModel) (*person.Person, error)
}

type PersonMapperImpl struct{}

func NewPersonMapper() PersonMapper {
	return &PersonMapperImpl{}
}

func (m *PersonMapperImpl) ToModel(p *person.Person) *models.PersonModel {
	model := &models.PersonModel{
		ID:        p.ID(),
		FullName:  p.FullName(),
		Email:     p.Email(),
		Phone:     p.Phone(),
		CreatedAt: timeToMillis(p.CreatedAt()),
		UpdatedAt: timeToMillis(p.UpdatedAt()),
	}

	if attrs := p.Attributes(); len(attrs) > 0 {
		raw, _ := json.Marshal(attrs)
		model.Attributes = datatypes.JSON(raw)
	}

	return model
}

func (m *PersonMapperImpl) ToDomain(model *models.PersonModel) (*person.Person, error) {
	var attributes map[string]any
	if len(model.Attributes) > 0 {
		if err := json.Unmarshal(model.Attributes, &attributes); err != nil {
			return nil, fmt.Errorf("person %s: failed to unmarshal attributes: %w", model.ID, err)
		}
	}

	return person.ReconstructPerson(
		model.ID,
		model.FullName,
		model.Email,
		model.Phone,
		attributes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// TagMapper handles Tag conversions.
type TagMapper interface {
	ToModel(t *person.Tag) *models.TagModel
	ToDomain(model *models.TagModel) (*person.Tag, error)
}

type TagMapperImpl struct{}

func NewTagMapper() TagMapper {
	return &TagMapperImpl{}
}

func (m *TagMapperImpl) ToModel(t *person.Tag) *models.TagModel {
	return &models.TagModel{
		ID:        t.ID(),
		OrgID:     t.OrgID(),
		Name:      t.Name(),
		Color:     t.Color(),
		CreatedAt: timeToMillis(t.CreatedAt()),
	}
}

func (m *TagMapperImpl) ToDomain(model *models.TagModel) (*person.Tag, error) {
	return person.ReconstructTag(model.ID, model.OrgID, model.Name, model.Color, millisToTime(model.CreatedAt))
}
