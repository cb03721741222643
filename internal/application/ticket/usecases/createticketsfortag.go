package usecases

import (
	"context"
	"fmt"

	"github.com/libdough/openvolunteer/internal/domain/org"
	"github.com/libdough/openvolunteer/internal/domain/person"
	"github.com/libdough/openvolunteer/internal/domain/ticket"
	"github.com/libdough/openvolunteer/internal/shared/config"
	"github.com/libdough/openvolunteer/internal/shared/errors"
	"github.com/libdough/openvolunteer/internal/shared/logger"
)

type CreateTicketsForTagCommand struct{}

type CreateTicketsForTagResult struct {
	Created      int
	Deduplicated int
}

// CreateTicketsForTagUseCase is the scheduled bulk job that opens a ticket
// from a configured template for every person carrying a configured tag,
// org by org. Each org gets its own fresh batch, deleted again when every
// candidate was deduplicated away. An org that lacks the template fails
// alone; the remaining orgs still run.
type CreateTicketsForTagUseCase struct {
	orgRepo    org.Repository
	personRepo person.PersonRepository
	batchRepo  ticket.BatchRepository
	factory    *ticketFactory
	lifecycle  ExecuteActionExecutor
	txRunner   TransactionRunner
	cfg        *config.TagTicketsConfig
	logger     logger.Interface
}

func NewCreateTicketsForTagUseCase(
	orgRepo org.Repository,
	personRepo person.PersonRepository,
	ticketRepo ticket.TicketRepository,
	actionRepo ticket.ActionRepository,
	templateRepo ticket.TemplateRepository,
	batchRepo ticket.BatchRepository,
	auditRepo ticket.AuditLogRepository,
	renderer TemplateRenderer,
	lifecycle ExecuteActionExecutor,
	txRunner TransactionRunner,
	cfg *config.TagTicketsConfig,
	log logger.Interface,
) *CreateTicketsForTagUseCase {
	return &CreateTicketsForTagUseCase{
		orgRepo:    orgRepo,
		personRepo: personRepo,
		batchRepo:  batchRepo,
		factory: &ticketFactory{
			ticketRepo:   ticketRepo,
			actionRepo:   actionRepo,
			templateRepo: templateRepo,
			auditRepo:    auditRepo,
			personRepo:   personRepo,
			renderer:     renderer,
			logger:       log,
		},
		lifecycle: lifecycle,
		txRunner:  txRunner,
		cfg:       cfg,
		logger:    log,
	}
}

func (uc *CreateTicketsForTagUseCase) Execute(ctx context.Context, _ CreateTicketsForTagCommand) (*CreateTicketsForTagResult, error) {
	if !uc.cfg.Enabled {
		return &CreateTicketsForTagResult{}, nil
	}
	if uc.cfg.TagName == "" || uc.cfg.TemplateName == "" {
		return nil, errors.NewConfigurationError("tag ticket job requires a tag name and a template name")
	}

	orgs, err := uc.resolveOrgs(ctx)
	if err != nil {
		return nil, err
	}

	result := &CreateTicketsForTagResult{}
	for _, o := range orgs {
		if err := uc.runForOrg(ctx, o, result); err != nil {
			uc.logger.Errorw("tag ticket job failed for org", "org", o.Slug(), "error", err)
		}
	}
	return result, nil
}

func (uc *CreateTicketsForTagUseCase) resolveOrgs(ctx context.Context) ([]*org.Organization, error) {
	if len(uc.cfg.OrgSlugs) > 0 {
		return uc.orgRepo.ListBySlugs(ctx, uc.cfg.OrgSlugs)
	}
	return uc.orgRepo.ListAll(ctx)
}

func (uc *CreateTicketsForTagUseCase) runForOrg(ctx context.Context, o *org.Organization, result *CreateTicketsForTagResult) error {
	tmpl, err := uc.factory.templateRepo.GetTemplateForOrg(ctx, uc.cfg.TemplateName, o.ID())
	if err != nil {
		return err
	}

	people, err := uc.personRepo.ListWithTag(ctx, uc.cfg.TagName, o.ID(), uc.cfg.Limit)
	if err != nil {
		return err
	}

	var (
		onCreate     []string
		created      int
		deduplicated int
	)
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		created, deduplicated = 0, 0
		onCreate = nil

		batch, err := ticket.NewBatch(ticket.NewBatchParams{
			OrgID:           o.ID(),
			Name:            fmt.Sprintf("Tickets for tag %q", uc.cfg.TagName),
			Reason:          fmt.Sprintf("people tagged %q", uc.cfg.TagName),
			Claimable:       tmpl.Claimable(),
			DefaultPriority: tmpl.DefaultPriority(),
		})
		if err != nil {
			return err
		}
		if err := uc.batchRepo.Save(txCtx, batch); err != nil {
			return err
		}
		batchID := batch.ID()

		for _, p := range people {
			res, err := uc.factory.create(txCtx, createTicketParams{
				tmpl:    tmpl,
				org:     o,
				person:  p,
				batchID: &batchID,
			})
			if err != nil {
				return err
			}
			if res.deduplicated {
				deduplicated++
				continue
			}
			created++
			onCreate = append(onCreate, res.onCreateActions...)
		}

		// A batch that ended up with no tickets has nothing to show.
		if created == 0 {
			return uc.batchRepo.Delete(txCtx, batchID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	result.Created += created
	result.Deduplicated += deduplicated

	for _, actionID := range onCreate {
		if _, err := uc.lifecycle.Execute(ctx, ExecuteActionCommand{ActionID: actionID}); err != nil {
			uc.logger.Warnw("on_create action failed", "action_id", actionID, "error", err)
		}
	}
	return nil
}
