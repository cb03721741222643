// Package org holds the organization entity that scopes templates, batches
// and tickets.
package org

import (
	"context"
	"fmt"
	"time"

	"github.com/libdough/openvolunteer/internal/shared/id"
)

type Organization struct {
	id        string
	name      string
	slug      string
	createdAt time.Time
}

func NewOrganization(name, slug string) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("organization slug is required")
	}
	return &Organization{
		id:        id.New(),
		name:      name,
		slug:      slug,
		createdAt: time.Now(),
	}, nil
}

func ReconstructOrganization(orgID, name, slug string, createdAt time.Time) (*Organization, error) {
	if orgID == "" {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("organization name is required")
	}
	return &Organization{
		id:        orgID,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
	}, nil
}

func (o *Organization) ID() string           { return o.id }
func (o *Organization) Name() string         { return o.name }
func (o *Organization) Slug() string         { return o.slug }
func (o *Organization) CreatedAt() time.Time { return o.createdAt }

type Repository interface {
	Save(ctx context.Context, o *Organization) error
	GetByID(ctx context.Context, orgID string) (*Organization, error)
	GetBySlug(ctx context.Context, slug string) (*Organization, error)
	ListBySlugs(ctx context.Context, slugs []string) ([]*Organization, error)
	ListAll(ctx context.Context) ([]*Organization, error)
}
