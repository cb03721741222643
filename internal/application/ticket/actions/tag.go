package actions

import (
	"context"

	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

// upsertTagHandler attaches the configured tag to the ticket's person,
// creating an org-scoped tag when none exists. Attaching is idempotent.
// Tickets without a person, and actions without a tag name, pass through
// without touching anything.
type upsertTagHandler struct {
	tagRepo person.TagRepository
	logger  logger.Interface
}

func (h *upsertTagHandler) Execute(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
	cfg, ok := act.Config().(ticket.TagConfig)
	if !ok {
		return errors.NewConfigurationError("upsert_tag action has wrong config type", act.ID())
	}
	if cfg.Tag == "" {
		return nil
	}
	if tk.PersonID() == nil {
		h.logger.Debugw("upsert_tag on a ticket without a person, nothing to tag",
			"ticket_id", tk.ID(),
			"tag", cfg.Tag,
		)
		return nil
	}

	tag, err := h.tagRepo.GetOrCreatePreferringOrg(ctx, cfg.Tag, tk.OrgID())
	if err != nil {
		return err
	}
	return h.tagRepo.Attach(ctx, *tk.PersonID(), tag.ID())
}

// removeTagHandler detaches the configured tag from the ticket's person.
// A tag that does not exist, or one the person never carried, is treated as
// already done rather than an error.
type removeTagHandler struct {
	tagRepo person.TagRepository
	logger  logger.Interface
}

func (h *removeTagHandler) Execute(ctx context.Context, tk *ticket.Ticket, act *ticket.Action) error {
	cfg, ok := act.Config().(ticket.TagConfig)
	if !ok {
		return errors.NewConfigurationError("remove_tag action has wrong config type", act.ID())
	}
	if cfg.Tag == "" {
		return nil
	}
	if tk.PersonID() == nil {
		h.logger.Debugw("remove_tag on a ticket without a person, nothing to detach",
			"ticket_id", tk.ID(),
			"tag", cfg.Tag,
		)
		return nil
	}

	tag, err := h.tagRepo.GetPreferringOrg(ctx, cfg.Tag, tk.OrgID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			h.logger.Debugw("remove_tag: tag does not exist, nothing to detach",
				"tag", cfg.Tag,
				"org_id", tk.OrgID(),
			)
			return nil
		}
		return err
	}
	return h.tagRepo.Detach(ctx, *tk.PersonID(), tag.ID())
}
