package usecases

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/ticket"
)

// TemplateRenderer renders a template string against a variable context.
type TemplateRenderer interface {
	Render(text string, ctx map[string]any) (string, error)
}

// ActionDispatcher routes an action to the handler for its type.
type ActionDispatcher interface {
	Dispatch(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error
}

// TransactionRunner wraps a unit of work in a database transaction.
// Satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ExecuteActionExecutor interface {
	Execute(ctx context.Context, cmd ExecuteActionCommand) (*ExecuteActionResult, error)
}

type RunLifecycleActionsExecutor interface {
	Execute(ctx context.Context, cmd RunLifecycleActionsCommand) (*RunLifecycleActionsResult, error)
}

type GenerateTicketsExecutor interface {
	Execute(ctx context.Context, cmd GenerateTicketsCommand) (*GenerateTicketsResult, error)
}

type ClaimTicketExecutor interface {
	Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error)
}

type UnclaimTicketExecutor interface {
	Execute(ctx context.Context, cmd UnclaimTicketCommand) (*UnclaimTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type CreateTicketsForTagExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketsForTagCommand) (*CreateTicketsForTagResult, error)
}
