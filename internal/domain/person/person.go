// Package person holds people, tags, and taggings: the volunteer roster
// side of the domain that ticket generation targets and tag actions mutate.
package person

import (
	"fmt"
	"time"

	"github.com/libdough/openvolunteer/internal/shared/id"
)

type Person struct {
	id         string
	fullName   string
	email      string
	phone      string
	attributes map[string]any
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPerson(fullName, email, phone string, attributes map[string]any) (*Person, error) {
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if attributes == nil {
		attributes = make(map[string]any)
	}
	now := time.Now()
	return &Person{
		id:         id.New(),
		fullName:   fullName,
		email:      email,
		phone:      phone,
		attributes: attributes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPerson(
	personID, fullName, email, phone string,
	attributes map[string]any,
	createdAt, updatedAt time.Time,
) (*Person, error) {
	if personID == "" {
		return nil, fmt.Errorf("person ID is required")
	}
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if attributes == nil {
		attributes = make(map[string]any)
	}
	return &Person{
		id:         personID,
		fullName:   fullName,
		email:      email,
		phone:      phone,
		attributes: attributes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (p *Person) ID() string           { return p.id }
func (p *Person) FullName() string     { return p.fullName }
func (p *Person) Email() string        { return p.email }
func (p *Person) Phone() string        { return p.phone }
func (p *Person) CreatedAt() time.Time { return p.createdAt }
func (p *Person) UpdatedAt() time.Time { return p.updatedAt }

func (p *Person) Attributes() map[string]any {
	out := make(map[string]any, len(p.attributes))
	for k, v := range p.attributes {
		out[k] = v
	}
	return out
}

// Attribute returns a free-form attribute (e.g. "discord") as a string, or
// "" when absent.
func (p *Person) Attribute(key string) string {
	if v, ok := p.attributes[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
