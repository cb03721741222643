package usecases

import (
	"github.com/libdough/openvolunteer/internal/domain/event"
	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/shared/tzfmt"
)

// RenderInputs feeds BuildRenderContext. Every field may be zero; the
// corresponding context key is simply absent and renders as an empty
// string.
type RenderInputs struct {
	Org      *org.Organization
	Person   *person.Person
	Event    *event.Event
	Shift    *event.Shift
	Template *ticket.Template
	// ActorName and ReporterName are the display names of the user running
	// the generation and the user recorded as reporter.
	ActorName    string
	ReporterName string
}

// BuildRenderContext assembles the nested variable context ticket templates
// render against.
//
// Timestamps expand into per-zone strings, so templates can say
// {{ event.starts_at.cdt }} or {{ shift.starts_at.time.est }}.
func BuildRenderContext(in RenderInputs) map[string]any {
	o, p, ev, shift := in.Org, in.Person, in.Event, in.Shift
	ctx := make(map[string]any)

	if o != nil {
		ctx["org"] = map[string]any{
			"name": o.Name(),
			"slug": o.Slug(),
		}
	}

	if p != nil {
		personCtx := map[string]any{
			"full_name": p.FullName(),
			"email":     p.Email(),
			"phone":     p.Phone(),
		}
		for k, v := range p.Attributes() {
			// Free-form attributes (discord handle etc.) never shadow the
			// built-in keys.
			if _, taken := personCtx[k]; !taken {
				personCtx[k] = v
			}
		}
		ctx["person"] = personCtx
	}

	if ev != nil {
		ctx["event"] = map[string]any{
			"title":            ev.Title(),
			"type":             ev.EventType().String(),
			"status":           ev.Status().String(),
			"location_name":    ev.LocationName(),
			"location_address": ev.LocationAddress(),
			"description":      ev.Description(),
			"owner_name":       ev.OwnerName(),
			"starts_at":        tzfmt.Expand(ev.StartsAt()),
			"ends_at":          tzfmt.Expand(ev.EndsAt()),
		}
	}

	if shift != nil {
		ctx["shift"] = map[string]any{
			"name":      shift.Name(),
			"starts_at": tzfmt.Expand(shift.StartsAt()),
			"ends_at":   tzfmt.Expand(shift.EndsAt()),
		}
	}

	if in.Template != nil {
		ctx["template"] = map[string]any{
			"name": in.Template.Name(),
		}
	}
	if in.ActorName != "" {
		ctx["actor"] = map[string]any{"name": in.ActorName}
	}
	if in.ReporterName != "" {
		ctx["reporter"] = map[string]any{"name": in.ReporterName}
	}

	return ctx
}
