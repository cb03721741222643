package person

import (
	"fmt"
	"time"

	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Tag is a label attachable to people. A nil org means the tag is global;
// an org-scoped tag of the same name shadows the global one.
type Tag struct {
	id        string
	orgID     *string
	name      string
	color     string
	createdAt time.Time
}

func NewTag(name string, orgID *string, color string) (*Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if color == "" {
		color = "gray"
	}
	return &Tag{
		id:        id.New(),
		orgID:     orgID,
		name:      name,
		color:     color,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTag(tagID string, orgID *string, name, color string, createdAt time.Time) (*Tag, error) {
	if tagID == "" {
		return nil, fmt.Errorf("tag ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	return &Tag{
		id:        tagID,
		orgID:     orgID,
		name:      name,
		color:     color,
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() string           { return t.id }
func (t *Tag) OrgID() *string       { return t.orgID }
func (t *Tag) Name() string         { return t.name }
func (t *Tag) Color() string        { return t.color }
func (t *Tag) CreatedAt() time.Time { return t.createdAt }

func (t *Tag) IsGlobal() bool { return t.orgID == nil }
