package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/shared/errors"
)

func TestExecuteAction(t *testing.T) {
	ctx := context.Background()

	setup := func(tk *ticket.Ticket, act *ticket.Action) (*mockTicketRepository, *mockActionRepository, *mockAuditLogRepository, *mockDispatcher) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		actionRepo := &mockActionRepository{
			GetByIDFunc: func(ctx context.Context, actionID string) (*ticket.Action, error) {
				return act, nil
			},
		}
		return ticketRepo, actionRepo, &mockAuditLogRepository{}, &mockDispatcher{}
	}

	t.Run("assigned user runs a manual action", func(t *testing.T) {
		tk := newClaimableTicket(t, strPtr("user-1"))
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{})

		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		var audited []*ticket.AuditLog
		auditRepo.AppendFunc = func(ctx context.Context, entry *ticket.AuditLog) error {
			audited = append(audited, entry)
			return nil
		}
		var updatedAction *ticket.Action
		actionRepo.UpdateFunc = func(ctx context.Context, a *ticket.Action) error {
			updatedAction = a
			return nil
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, &mockTxRunner{}, mockLogger{})
		result, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID(), ActorID: strPtr("user-1")})

		assert.NoError(t, err)
		assert.Equal(t, tk.ID(), result.TicketID)
		assert.False(t, result.StatusChanged)
		if assert.Len(t, audited, 1) {
			assert.Equal(t, vo.AuditActionRun, audited[0].EventType())
			assert.Equal(t, false, audited[0].Metadata()["is_system"])
		}
		if assert.NotNil(t, updatedAction) {
			assert.True(t, updatedAction.IsCompleted())
		}
	})

	t.Run("system actor skips the permission check", func(t *testing.T) {
		tk := newClaimableTicket(t, nil)
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{})
		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		var ranEntry *ticket.AuditLog
		auditRepo.AppendFunc = func(ctx context.Context, entry *ticket.AuditLog) error {
			ranEntry = entry
			return nil
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, &mockTxRunner{}, mockLogger{})
		_, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID()})
		assert.NoError(t, err)
		if assert.NotNil(t, ranEntry) {
			assert.Equal(t, true, ranEntry.Metadata()["is_system"])
		}
	})

	t.Run("non-assignee is rejected", func(t *testing.T) {
		tk := newClaimableTicket(t, strPtr("user-1"))
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{})
		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		dispatcher.DispatchFunc = func(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
			t.Fatal("handler must not run for an unauthorized actor")
			return nil
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, &mockTxRunner{}, mockLogger{})
		_, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID(), ActorID: strPtr("user-2")})
		assert.True(t, errors.IsPermissionError(err))
	})

	t.Run("completed action cannot run twice", func(t *testing.T) {
		tk := newClaimableTicket(t, strPtr("user-1"))
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{})
		assert.NoError(t, act.MarkCompleted())

		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		dispatcher.DispatchFunc = func(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
			t.Fatal("handler must not run for a completed action")
			return nil
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, &mockTxRunner{}, mockLogger{})
		_, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID(), ActorID: strPtr("user-1")})
		assert.True(t, errors.IsAlreadyCompletedError(err))
	})

	t.Run("action with a target status transitions the ticket", func(t *testing.T) {
		tk := newClaimableTicket(t, strPtr("user-1"))
		target := vo.StatusCompleted
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{
			UpdatesTicketStatus: &target,
		})

		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		var audited []vo.AuditEvent
		auditRepo.AppendFunc = func(ctx context.Context, entry *ticket.AuditLog) error {
			audited = append(audited, entry.EventType())
			return nil
		}
		ticketUpdated := false
		ticketRepo.UpdateFunc = func(ctx context.Context, updated *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, &mockTxRunner{}, mockLogger{})
		result, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID(), ActorID: strPtr("user-1")})

		assert.NoError(t, err)
		assert.True(t, result.StatusChanged)
		assert.Equal(t, vo.StatusCompleted.String(), result.TicketStatus)
		assert.True(t, ticketUpdated)
		assert.Equal(t, []vo.AuditEvent{vo.AuditActionRun, vo.AuditStatusChanged}, audited)
		assert.NotNil(t, tk.CompletedAt())
	})

	t.Run("handler failure records action_failed after rollback", func(t *testing.T) {
		tk := newClaimableTicket(t, strPtr("user-1"))
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{})

		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		dispatcher.DispatchFunc = func(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
			return errors.NewInternalError("handler exploded")
		}

		inTx := false
		txRunner := &mockTxRunner{
			RunFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				inTx = true
				defer func() { inTx = false }()
				return fn(ctx)
			},
		}

		var failureEntry *ticket.AuditLog
		auditRepo.AppendFunc = func(ctx context.Context, entry *ticket.AuditLog) error {
			if entry.EventType() == vo.AuditActionFailed {
				assert.False(t, inTx, "action_failed must be written outside the rolled-back transaction")
				failureEntry = entry
			}
			return nil
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, txRunner, mockLogger{})
		_, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID(), ActorID: strPtr("user-1")})

		assert.Error(t, err)
		assert.False(t, act.IsCompleted())
		if assert.NotNil(t, failureEntry) {
			assert.False(t, failureEntry.Success())
			assert.Contains(t, failureEntry.Message(), "handler exploded")
			assert.Contains(t, failureEntry.Metadata()["error"], "handler exploded")
			assert.Equal(t, false, failureEntry.Metadata()["is_system"])
		}
	})

	t.Run("audit write failure is not recorded as a handler failure", func(t *testing.T) {
		tk := newClaimableTicket(t, strPtr("user-1"))
		act := newActionWith(t, tk.ID(), ticket.NewActionTemplateParams{})

		ticketRepo, actionRepo, auditRepo, dispatcher := setup(tk, act)
		auditRepo.AppendFunc = func(ctx context.Context, entry *ticket.AuditLog) error {
			if entry.EventType() == vo.AuditActionFailed {
				t.Fatal("action_failed is reserved for handler failures")
			}
			return errors.NewInternalError("audit store unavailable")
		}

		uc := NewExecuteActionUseCase(ticketRepo, actionRepo, auditRepo, dispatcher, &mockTxRunner{}, mockLogger{})
		_, err := uc.Execute(ctx, ExecuteActionCommand{ActionID: act.ID(), ActorID: strPtr("user-1")})
		assert.Error(t, err)
	})
}
