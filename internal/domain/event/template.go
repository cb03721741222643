package event

import (
	"fmt"
	"time"

	"github.com/libdough/openvolunteer/internal/shared/id"
)

// Template is an event template: a named configuration that wires a kind of
// event to the ticket templates generated for it.
type Template struct {
	id                string
	name              string
	ticketTemplateIDs []string
	createdAt         time.Time
}

func NewTemplate(name string, ticketTemplateIDs []string) (*Template, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	return &Template{
		id:                id.New(),
		name:              name,
		ticketTemplateIDs: append([]string(nil), ticketTemplateIDs...),
		createdAt:         time.Now(),
	}, nil
}

func ReconstructTemplate(templateID, name string, ticketTemplateIDs []string, createdAt time.Time) (*Template, error) {
	if templateID == "" {
		return nil, fmt.Errorf("template ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	return &Template{
		id:                templateID,
		name:              name,
		ticketTemplateIDs: append([]string(nil), ticketTemplateIDs...),
		createdAt:         createdAt,
	}, nil
}

func (t *Template) ID() string           { return t.id }
func (t *Template) Name() string         { return t.name }
func (t *Template) CreatedAt() time.Time { return t.createdAt }

func (t *Template) TicketTemplateIDs() []string {
	out := make([]string, len(t.ticketTemplateIDs))
	copy(out, t.ticketTemplateIDs)
	return out
}

func (t *Template) SetTicketTemplateIDs(ids []string) {
	t.ticketTemplateIDs = append([]string(nil), ids...)
}
