package ticket

import (
	"fmt"
	"time"

	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Template is a reusable recipe for tickets: string templates for the
// rendered name/description, default priority and claimability, and the
// action templates instantiated onto each generated ticket. A nil org makes
// the template global; an org-scoped template of the same name shadows it.
type Template struct {
	id                  string
	orgID               *string
	name                string
	nameTemplate        string
	descriptionTemplate string
	actionTemplateIDs   []string
	defaultPriority     vo.Priority
	claimable           bool
	maxTickets          *int
	isActive            bool
	createdAt           time.Time
	modifiedAt          time.Time
}

type NewTemplateParams struct {
	OrgID               *string
	Name                string
	NameTemplate        string
	DescriptionTemplate string
	ActionTemplateIDs   []string
	DefaultPriority     vo.Priority
	Claimable           bool
	MaxTickets          *int
}

func NewTemplate(p NewTemplateParams) (*Template, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if p.NameTemplate == "" {
		return nil, fmt.Errorf("ticket name template is required")
	}
	if !p.DefaultPriority.IsValid() {
		return nil, fmt.Errorf("invalid default priority")
	}
	if p.MaxTickets != nil && *p.MaxTickets <= 0 {
		return nil, fmt.Errorf("max tickets must be positive when set")
	}

	now := time.Now()
	return &Template{
		id:                  id.New(),
		orgID:               p.OrgID,
		name:                p.Name,
		nameTemplate:        p.NameTemplate,
		descriptionTemplate: p.DescriptionTemplate,
		actionTemplateIDs:   append([]string(nil), p.ActionTemplateIDs...),
		defaultPriority:     p.DefaultPriority,
		claimable:           p.Claimable,
		maxTickets:          p.MaxTickets,
		isActive:            true,
		createdAt:           now,
		modifiedAt:          now,
	}, nil
}

type ReconstructTemplateParams struct {
	ID                  string
	OrgID               *string
	Name                string
	NameTemplate        string
	DescriptionTemplate string
	ActionTemplateIDs   []string
	DefaultPriority     vo.Priority
	Claimable           bool
	MaxTickets          *int
	IsActive            bool
	CreatedAt           time.Time
	ModifiedAt          time.Time
}

func ReconstructTemplate(p ReconstructTemplateParams) (*Template, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("template ID is required")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if !p.DefaultPriority.IsValid() {
		return nil, fmt.Errorf("invalid default priority")
	}

	return &Template{
		id:                  p.ID,
		orgID:               p.OrgID,
		name:                p.Name,
		nameTemplate:        p.NameTemplate,
		descriptionTemplate: p.DescriptionTemplate,
		actionTemplateIDs:   append([]string(nil), p.ActionTemplateIDs...),
		defaultPriority:     p.DefaultPriority,
		claimable:           p.Claimable,
		maxTickets:          p.MaxTickets,
		isActive:            p.IsActive,
		createdAt:           p.CreatedAt,
		modifiedAt:          p.ModifiedAt,
	}, nil
}

func (t *Template) ID() string                   { return t.id }
func (t *Template) OrgID() *string               { return t.orgID }
func (t *Template) Name() string                 { return t.name }
func (t *Template) NameTemplate() string         { return t.nameTemplate }
func (t *Template) DescriptionTemplate() string  { return t.descriptionTemplate }
func (t *Template) DefaultPriority() vo.Priority { return t.defaultPriority }
func (t *Template) Claimable() bool              { return t.claimable }
func (t *Template) MaxTickets() *int             { return t.maxTickets }
func (t *Template) IsActive() bool               { return t.isActive }
func (t *Template) CreatedAt() time.Time         { return t.createdAt }
func (t *Template) ModifiedAt() time.Time        { return t.modifiedAt }

func (t *Template) IsGlobal() bool { return t.orgID == nil }

func (t *Template) ActionTemplateIDs() []string {
	out := make([]string, len(t.actionTemplateIDs))
	copy(out, t.actionTemplateIDs)
	return out
}

func (t *Template) SetActionTemplateIDs(ids []string) {
	t.actionTemplateIDs = append([]string(nil), ids...)
	t.modifiedAt = time.Now()
}

func (t *Template) Deactivate() {
	t.isActive = false
	t.modifiedAt = time.Now()
}

// ExceedsCap reports whether generating count tickets would violate the
// template's max-ticket cap.
func (t *Template) ExceedsCap(count int) bool {
	return t.maxTickets != nil && *t.maxTickets < count
}
