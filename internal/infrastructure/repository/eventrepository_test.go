package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libdough/openvolunteer/internal/domain/event"
	vo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

func createTestEvent(t *testing.T, repo *EventRepository) *event.Event {
	t.Helper()
	starts := time.Date(2026, 6, 6, 14, 0, 0, 0, time.UTC)
	e, err := event.NewEvent("org-1", "Saturday Canvass", vo.EventCanvass, starts, starts.Add(3*time.Hour), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), e))
	return e
}

func TestEventRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, repo)

	t.Run("round trips an event", func(t *testing.T) {
		got, err := repo.GetByID(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, "Saturday Canvass", got.Title())
		assert.Equal(t, vo.EventCanvass, got.EventType())
		assert.Equal(t, e.StartsAt().UnixMilli(), got.StartsAt().UnixMilli())
	})

	t.Run("update persists status changes", func(t *testing.T) {
		require.NoError(t, e.SetStatus(vo.EventCanceled))
		require.NoError(t, repo.Update(ctx, e))

		got, err := repo.GetByID(ctx, e.ID())
		require.NoError(t, err)
		assert.True(t, got.Status().IsCanceled())
	})

	t.Run("unknown event is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestEventTemplateRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventTemplateRepository(db)
	ctx := context.Background()

	tmpl, err := event.NewTemplate("Canvass", []string{"tt-1", "tt-2"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tmpl))

	t.Run("loads attached ticket template IDs", func(t *testing.T) {
		got, err := repo.GetByID(ctx, tmpl.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"tt-1", "tt-2"}, got.TicketTemplateIDs())
	})

	t.Run("finds templates by name", func(t *testing.T) {
		got, err := repo.GetByName(ctx, "Canvass")
		require.NoError(t, err)
		assert.Equal(t, tmpl.ID(), got.ID())

		_, err = repo.GetByName(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("resaving replaces attachments", func(t *testing.T) {
		tmpl.SetTicketTemplateIDs([]string{"tt-2"})
		require.NoError(t, repo.Save(ctx, tmpl))

		got, err := repo.GetByID(ctx, tmpl.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"tt-2"}, got.TicketTemplateIDs())
	})
}

func TestShiftRepository_GetOrCreateDefault(t *testing.T) {
	db := setupTestDB(t)
	eventRepo := NewEventRepository(db)
	repo := NewShiftRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, eventRepo)

	created, err := repo.GetOrCreateDefault(ctx, e.ID())
	require.NoError(t, err)
	assert.True(t, created.IsDefault())
	assert.Equal(t, e.StartsAt().UnixMilli(), created.StartsAt().UnixMilli())

	again, err := repo.GetOrCreateDefault(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), again.ID())

	_, err = repo.GetOrCreateDefault(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignmentRepository(t *testing.T) {
	db := setupTestDB(t)
	eventRepo := NewEventRepository(db)
	shiftRepo := NewShiftRepository(db)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	e := createTestEvent(t, eventRepo)
	defaultShift, err := shiftRepo.GetOrCreateDefault(ctx, e.ID())
	require.NoError(t, err)

	named, err := event.NewShift(e.ID(), "Door Knocking", e.StartsAt(), e.EndsAt(), 10)
	require.NoError(t, err)
	require.NoError(t, shiftRepo.Save(ctx, named))

	assign := func(shiftID, personID string) *event.ShiftAssignment {
		a, err := event.NewShiftAssignment(shiftID, personID, vo.AssignmentConfirmed, nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))
		return a
	}

	assign(defaultShift.ID(), "p-1")
	assign(named.ID(), "p-2")

	t.Run("the shift person pair is unique", func(t *testing.T) {
		dup, err := event.NewShiftAssignment(named.ID(), "p-2", vo.AssignmentPending, nil)
		require.NoError(t, err)
		err = repo.Save(ctx, dup)
		require.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("finds assignments by shift and person", func(t *testing.T) {
		got, err := repo.GetByShiftAndPerson(ctx, named.ID(), "p-2")
		require.NoError(t, err)
		assert.Equal(t, vo.AssignmentConfirmed, got.Status())

		_, err = repo.GetByShiftAndPerson(ctx, named.ID(), "p-99")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("lists every assignment for the event", func(t *testing.T) {
		got, err := repo.ListForEvent(ctx, e.ID(), event.AssignmentFilter{IncludeDefaultShift: true})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("default shift assignments drop out unless included", func(t *testing.T) {
		got, err := repo.ListForEvent(ctx, e.ID(), event.AssignmentFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p-2", got[0].PersonID())
	})

	t.Run("naming a shift restricts to that shift alone", func(t *testing.T) {
		shiftID := named.ID()
		got, err := repo.ListForEvent(ctx, e.ID(), event.AssignmentFilter{
			ShiftID:             &shiftID,
			IncludeDefaultShift: true,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p-2", got[0].PersonID())

		defaultID := defaultShift.ID()
		got, err = repo.ListForEvent(ctx, e.ID(), event.AssignmentFilter{ShiftID: &defaultID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p-1", got[0].PersonID())
	})

	t.Run("person filter narrows the candidates", func(t *testing.T) {
		got, err := repo.ListForEvent(ctx, e.ID(), event.AssignmentFilter{
			IncludeDefaultShift: true,
			PersonIDs:           []string{"p-1"},
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p-1", got[0].PersonID())
	})
}
