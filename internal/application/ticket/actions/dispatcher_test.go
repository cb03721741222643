package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libdough/openvolunteer/internal/domain/event"
	eventvo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

func testTicket(t *testing.T, personID, shiftID, eventID *string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.NewTicketParams{
		OrgID:     "org-1",
		Name:      "Confirm shift",
		Priority:  vo.PriorityDefault,
		Claimable: true,
		PersonID:  personID,
		ShiftID:   shiftID,
		EventID:   eventID,
	})
	require.NoError(t, err)
	return tk
}

func testAction(t *testing.T, actionType vo.ActionType, config string) *ticket.Action {
	t.Helper()
	tmpl, err := ticket.NewActionTemplate(ticket.NewActionTemplateParams{
		Slug:       "test-" + string(actionType),
		ActionType: actionType,
		Label:      "Test",
		Config:     []byte(config),
	})
	require.NoError(t, err)
	act, err := ticket.NewActionFromTemplate("tk-1", tmpl)
	require.NoError(t, err)
	return act
}

func testShift(t *testing.T, shiftID string) *event.Shift {
	t.Helper()
	now := time.Now()
	s, err := event.ReconstructShift(shiftID, "ev-1", "Default", now, now.Add(2*time.Hour), 0, true, now)
	require.NoError(t, err)
	return s
}

func testAssignment(t *testing.T, shiftID, personID string, status eventvo.AssignmentStatus) *event.ShiftAssignment {
	t.Helper()
	a, err := event.ReconstructShiftAssignment("asg-1", shiftID, personID, status, nil, nil, time.Now())
	require.NoError(t, err)
	return a
}

func strPtr(s string) *string { return &s }

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("noop succeeds without side effects", func(t *testing.T) {
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, &mockTagRepository{}, mockLogger{})
		tk := testTicket(t, nil, nil, nil)
		act := testAction(t, vo.ActionNoop, "")

		assert.NoError(t, d.Dispatch(ctx, tk, act))
	})
}

func TestUpdateShiftStatusHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the existing assignment", func(t *testing.T) {
		var updated *event.ShiftAssignment
		assignmentRepo := &mockAssignmentRepository{
			GetByShiftAndPersonFunc: func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
				assert.Equal(t, "shift-1", shiftID)
				assert.Equal(t, "person-1", personID)
				return testAssignment(t, shiftID, personID, eventvo.AssignmentPending), nil
			},
			UpdateFunc: func(ctx context.Context, a *event.ShiftAssignment) error {
				updated = a
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, assignmentRepo, &mockTagRepository{}, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), strPtr("shift-1"), nil)
		act := testAction(t, vo.ActionUpdateShiftStatus, `{"status":"confirmed"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		if assert.NotNil(t, updated) {
			assert.Equal(t, eventvo.AssignmentConfirmed, updated.Status())
		}
	})

	t.Run("falls back to the event default shift", func(t *testing.T) {
		shiftRepo := &mockShiftRepository{
			GetOrCreateDefaultFunc: func(ctx context.Context, eventID string) (*event.Shift, error) {
				assert.Equal(t, "ev-1", eventID)
				return testShift(t, "default-shift"), nil
			},
		}
		var sawShiftID string
		assignmentRepo := &mockAssignmentRepository{
			GetByShiftAndPersonFunc: func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
				sawShiftID = shiftID
				return testAssignment(t, shiftID, personID, eventvo.AssignmentPending), nil
			},
		}
		d := NewDispatcher(shiftRepo, assignmentRepo, &mockTagRepository{}, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), nil, strPtr("ev-1"))
		act := testAction(t, vo.ActionUpdateShiftStatus, `{"status":"signed_in"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		assert.Equal(t, "default-shift", sawShiftID)
	})

	t.Run("fails on a ticket without a person", func(t *testing.T) {
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, &mockTagRepository{}, mockLogger{})
		tk := testTicket(t, nil, strPtr("shift-1"), nil)
		act := testAction(t, vo.ActionUpdateShiftStatus, `{"status":"confirmed"}`)

		assert.True(t, errors.IsConfigurationError(d.Dispatch(ctx, tk, act)))
	})

	t.Run("fails on a ticket without shift or event", func(t *testing.T) {
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, &mockTagRepository{}, mockLogger{})
		tk := testTicket(t, strPtr("person-1"), nil, nil)
		act := testAction(t, vo.ActionUpdateShiftStatus, `{"status":"confirmed"}`)

		assert.True(t, errors.IsConfigurationError(d.Dispatch(ctx, tk, act)))
	})

	t.Run("propagates a missing assignment", func(t *testing.T) {
		assignmentRepo := &mockAssignmentRepository{
			GetByShiftAndPersonFunc: func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
				return nil, errors.NewNotFoundError("assignment not found")
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, assignmentRepo, &mockTagRepository{}, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), strPtr("shift-1"), nil)
		act := testAction(t, vo.ActionUpdateShiftStatus, `{"status":"confirmed"}`)

		assert.True(t, errors.IsNotFoundError(d.Dispatch(ctx, tk, act)))
	})
}

func TestUpsertShiftAssignmentHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the assignment when missing", func(t *testing.T) {
		var saved *event.ShiftAssignment
		assignmentRepo := &mockAssignmentRepository{
			GetByShiftAndPersonFunc: func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
				return nil, errors.NewNotFoundError("assignment not found")
			},
			SaveFunc: func(ctx context.Context, a *event.ShiftAssignment) error {
				saved = a
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, assignmentRepo, &mockTagRepository{}, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), strPtr("shift-1"), nil)
		act := testAction(t, vo.ActionUpsertShiftAssignment, `{"status":"confirmed"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		if assert.NotNil(t, saved) {
			assert.Equal(t, "shift-1", saved.ShiftID())
			assert.Equal(t, "person-1", saved.PersonID())
			assert.Equal(t, eventvo.AssignmentConfirmed, saved.Status())
		}
	})

	t.Run("updates the assignment when present", func(t *testing.T) {
		var updated *event.ShiftAssignment
		assignmentRepo := &mockAssignmentRepository{
			GetByShiftAndPersonFunc: func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
				return testAssignment(t, shiftID, personID, eventvo.AssignmentInit), nil
			},
			SaveFunc: func(ctx context.Context, a *event.ShiftAssignment) error {
				t.Fatal("save must not be called for an existing assignment")
				return nil
			},
			UpdateFunc: func(ctx context.Context, a *event.ShiftAssignment) error {
				updated = a
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, assignmentRepo, &mockTagRepository{}, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), strPtr("shift-1"), nil)
		act := testAction(t, vo.ActionUpsertShiftAssignment, ``)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		if assert.NotNil(t, updated) {
			assert.Equal(t, eventvo.AssignmentPending, updated.Status())
		}
	})

	t.Run("recovers from losing the unique constraint race", func(t *testing.T) {
		calls := 0
		var updated *event.ShiftAssignment
		assignmentRepo := &mockAssignmentRepository{
			GetByShiftAndPersonFunc: func(ctx context.Context, shiftID, personID string) (*event.ShiftAssignment, error) {
				calls++
				if calls == 1 {
					return nil, errors.NewNotFoundError("assignment not found")
				}
				return testAssignment(t, shiftID, personID, eventvo.AssignmentInit), nil
			},
			SaveFunc: func(ctx context.Context, a *event.ShiftAssignment) error {
				return errors.NewInternalError("insert failed", "UNIQUE constraint failed: shift_assignments.shift_id")
			},
			UpdateFunc: func(ctx context.Context, a *event.ShiftAssignment) error {
				updated = a
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, assignmentRepo, &mockTagRepository{}, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), strPtr("shift-1"), nil)
		act := testAction(t, vo.ActionUpsertShiftAssignment, `{"status":"confirmed"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		assert.Equal(t, 2, calls)
		if assert.NotNil(t, updated) {
			assert.Equal(t, eventvo.AssignmentConfirmed, updated.Status())
		}
	})
}

func TestTagHandlers(t *testing.T) {
	ctx := context.Background()

	orgTag := func(t *testing.T) *person.Tag {
		t.Helper()
		orgID := "org-1"
		tag, err := person.ReconstructTag("tag-1", &orgID, "contacted", "gray", time.Now())
		require.NoError(t, err)
		return tag
	}

	t.Run("upsert_tag attaches the resolved tag", func(t *testing.T) {
		var attachedPerson, attachedTag string
		tagRepo := &mockTagRepository{
			GetOrCreatePreferringOrgFunc: func(ctx context.Context, name, orgID string) (*person.Tag, error) {
				assert.Equal(t, "contacted", name)
				assert.Equal(t, "org-1", orgID)
				return orgTag(t), nil
			},
			AttachFunc: func(ctx context.Context, personID, tagID string) error {
				attachedPerson, attachedTag = personID, tagID
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, tagRepo, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), nil, nil)
		act := testAction(t, vo.ActionUpsertTag, `{"tag":"contacted"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		assert.Equal(t, "person-1", attachedPerson)
		assert.Equal(t, "tag-1", attachedTag)
	})

	t.Run("upsert_tag with empty tag is a no-op", func(t *testing.T) {
		tagRepo := &mockTagRepository{
			GetOrCreatePreferringOrgFunc: func(ctx context.Context, name, orgID string) (*person.Tag, error) {
				t.Fatal("tag lookup must not happen for an empty tag")
				return nil, nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, tagRepo, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), nil, nil)
		act := testAction(t, vo.ActionUpsertTag, `{}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
	})

	t.Run("remove_tag detaches the resolved tag", func(t *testing.T) {
		var detachedPerson, detachedTag string
		tagRepo := &mockTagRepository{
			GetPreferringOrgFunc: func(ctx context.Context, name, orgID string) (*person.Tag, error) {
				return orgTag(t), nil
			},
			DetachFunc: func(ctx context.Context, personID, tagID string) error {
				detachedPerson, detachedTag = personID, tagID
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, tagRepo, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), nil, nil)
		act := testAction(t, vo.ActionRemoveTag, `{"tag":"contacted"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
		assert.Equal(t, "person-1", detachedPerson)
		assert.Equal(t, "tag-1", detachedTag)
	})

	t.Run("remove_tag of a missing tag succeeds silently", func(t *testing.T) {
		tagRepo := &mockTagRepository{
			GetPreferringOrgFunc: func(ctx context.Context, name, orgID string) (*person.Tag, error) {
				return nil, errors.NewNotFoundError("tag not found")
			},
			DetachFunc: func(ctx context.Context, personID, tagID string) error {
				t.Fatal("detach must not be called when the tag does not exist")
				return nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, tagRepo, mockLogger{})

		tk := testTicket(t, strPtr("person-1"), nil, nil)
		act := testAction(t, vo.ActionRemoveTag, `{"tag":"ghost"}`)

		assert.NoError(t, d.Dispatch(ctx, tk, act))
	})

	t.Run("tag actions on a ticket without a person are silent no-ops", func(t *testing.T) {
		tagRepo := &mockTagRepository{
			GetOrCreatePreferringOrgFunc: func(ctx context.Context, name, orgID string) (*person.Tag, error) {
				t.Fatal("tag lookup must not happen without a person")
				return nil, nil
			},
			GetPreferringOrgFunc: func(ctx context.Context, name, orgID string) (*person.Tag, error) {
				t.Fatal("tag lookup must not happen without a person")
				return nil, nil
			},
		}
		d := NewDispatcher(&mockShiftRepository{}, &mockAssignmentRepository{}, tagRepo, mockLogger{})
		tk := testTicket(t, nil, nil, nil)

		for _, at := range []vo.ActionType{vo.ActionUpsertTag, vo.ActionRemoveTag} {
			act := testAction(t, at, `{"tag":"contacted"}`)
			assert.NoError(t, d.Dispatch(ctx, tk, act), "type %s", at)
		}
	})
}
