package models

import "gorm.io/datatypes"

type OrganizationModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:200;not null"`
	Slug      string `gorm:"uniqueIndex;size:100;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type PersonModel struct {
	ID         string         `gorm:"primaryKey;size:36"`
	FullName   string         `gorm:"size:200;not null"`
	Email      string         `gorm:"size:300;index"`
	Phone      string         `gorm:"size:50"`
	Attributes datatypes.JSON `gorm:"type:json"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PersonModel) TableName() string {
	return "people"
}

// PersonOrgModel records membership of a person in an organization.
type PersonOrgModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	PersonID  string `gorm:"size:36;not null;uniqueIndex:idx_person_org"`
	OrgID     string `gorm:"size:36;not null;uniqueIndex:idx_person_org"`
	Role      string `gorm:"size:50;not null;default:member"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (PersonOrgModel) TableName() string {
	return "person_orgs"
}

type TagModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	OrgID     *string `gorm:"size:36;index:idx_tags_org_name"`
	Name      string  `gorm:"size:100;not null;index:idx_tags_org_name"`
	Color     string  `gorm:"size:30;not null;default:gray"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}

// TaggingModel attaches a tag to a person. The pair is unique so repeated
// attaches are constraint violations, not duplicates.
type TaggingModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	PersonID  string `gorm:"size:36;not null;uniqueIndex:idx_person_tag"`
	TagID     string `gorm:"size:36;not null;uniqueIndex:idx_person_tag"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TaggingModel) TableName() string {
	return "taggings"
}
