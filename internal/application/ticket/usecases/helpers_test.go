package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/libdough/openvolunteer/internal/domain/event"
	eventvo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
)

func strPtr(s string) *string { return &s }

func newOrg(t *testing.T) *org.Organization {
	t.Helper()
	o, err := org.ReconstructOrganization("org-1", "Sunrise Valley", "sunrise-valley", time.Now())
	require.NoError(t, err)
	return o
}

func newPerson(t *testing.T, name string) *person.Person {
	t.Helper()
	p, err := person.NewPerson(name, "volunteer@example.org", "+15550100", map[string]any{"discord": "vol#1234"})
	require.NoError(t, err)
	return p
}

func newEvent(t *testing.T, templateID *string) *event.Event {
	t.Helper()
	starts := time.Date(2026, 6, 6, 14, 0, 0, 0, time.UTC)
	ev, err := event.ReconstructEvent(
		"ev-1", "org-1", "Saturday Canvass",
		eventvo.EventScheduled, eventvo.EventCanvass,
		templateID,
		starts, starts.Add(4*time.Hour),
		"Town Hall", "1 Main St", "Door knocking downtown", "Sam Organizer",
		nil, time.Now(),
	)
	require.NoError(t, err)
	return ev
}

func newShift(t *testing.T, shiftID string) *event.Shift {
	t.Helper()
	now := time.Now()
	s, err := event.ReconstructShift(shiftID, "ev-1", "Morning", now, now.Add(4*time.Hour), 0, false, now)
	require.NoError(t, err)
	return s
}

func newAssignment(t *testing.T, assignmentID, shiftID, personID string) *event.ShiftAssignment {
	t.Helper()
	a, err := event.ReconstructShiftAssignment(assignmentID, shiftID, personID, eventvo.AssignmentConfirmed, nil, nil, time.Now())
	require.NoError(t, err)
	return a
}

func newTicketTemplate(t *testing.T, name string, maxTickets *int) *ticket.Template {
	t.Helper()
	tmpl, err := ticket.NewTemplate(ticket.NewTemplateParams{
		Name:                name,
		NameTemplate:        "Call {{ person.full_name }}",
		DescriptionTemplate: "About {{ event.title }}",
		DefaultPriority:     vo.PriorityDefault,
		Claimable:           true,
		MaxTickets:          maxTickets,
	})
	require.NoError(t, err)
	return tmpl
}

func newClaimableTicket(t *testing.T, assignee *string) *ticket.Ticket {
	t.Helper()
	personID := "person-1"
	tk, err := ticket.NewTicket(ticket.NewTicketParams{
		OrgID:     "org-1",
		Name:      "Call volunteer",
		Priority:  vo.PriorityDefault,
		Claimable: true,
		PersonID:  &personID,
	})
	require.NoError(t, err)
	if assignee != nil {
		require.NoError(t, tk.Claim(*assignee))
	}
	return tk
}

func newActionWith(t *testing.T, ticketID string, params ticket.NewActionTemplateParams) *ticket.Action {
	t.Helper()
	if params.Slug == "" {
		params.Slug = "test-action"
	}
	if params.Label == "" {
		params.Label = "Test action"
	}
	if params.ActionType == "" {
		params.ActionType = vo.ActionNoop
	}
	tmpl, err := ticket.NewActionTemplate(params)
	require.NoError(t, err)
	act, err := ticket.NewActionFromTemplate(ticketID, tmpl)
	require.NoError(t, err)
	return act
}
