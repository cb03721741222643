// Package seeds installs the default global templates. Every routine is
// idempotent so seeding can run on each deploy.
package seeds

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	evo "github.com/libdough/openvolunteer/internal/domain/event/valueobjects"
	vo "github.com/libdough/openvolunteer/internal/domain/ticket/valueobjects"
	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	"github.com/libdough/openvolunteer/internal/shared/id"
)

// SeedAll installs action templates, ticket templates and event templates
// in dependency order.
func SeedAll(db *gorm.DB) error {
	actions, err := SeedActionTemplates(db)
	if err != nil {
		return err
	}
	tickets, err := SeedTicketTemplates(db, actions)
	if err != nil {
		return err
	}
	return SeedEventTemplates(db, tickets)
}

func strRef(s string) *string { return &s }

func statusConfig(status evo.AssignmentStatus) datatypes.JSON {
	return datatypes.JSON(fmt.Sprintf(`{"status": %q}`, status.String()))
}

// SeedActionTemplates installs the global action templates keyed by slug.
// It returns the installed templates so ticket template seeding can attach them.
func SeedActionTemplates(db *gorm.DB) (map[string]models.ActionTemplateModel, error) {
	templates := []models.ActionTemplateModel{
		{
			Slug:       "create_assignment",
			ActionType: vo.ActionUpsertShiftAssignment.String(),
			Label:      "Confirm Interest",
			Description: "Confirms that the person is interested and creates an event " +
				"assignment with a fully committed status. " +
				"This action also marks the ticket as completed.",
			Config:              statusConfig(evo.AssignmentConfirmed),
			UpdatesTicketStatus: strRef(vo.StatusCompleted.String()),
			RunMode:             vo.RunManual.String(),
			ButtonColor:         vo.ColorPrimary.String(),
			IsActive:            true,
		},
		{
			Slug:       "create_assignment_partial",
			ActionType: vo.ActionUpsertShiftAssignment.String(),
			Label:      "Maybe",
			Description: "Creates an event assignment indicating partial or tentative " +
				"interest from the person. " +
				"Use this when the person is unsure or only partially available.",
			Config:              statusConfig(evo.AssignmentPartial),
			UpdatesTicketStatus: strRef(vo.StatusCompleted.String()),
			RunMode:             vo.RunManual.String(),
			ButtonColor:         vo.ColorSecondary.String(),
			IsActive:            true,
		},
		{
			Slug:       "complete_ticket",
			ActionType: vo.ActionNoop.String(),
			Label:      "Completed",
			Description: "Marks the ticket as completed without performing any " +
				"additional actions. " +
				"Useful when the task has been finished manually.",
			UpdatesTicketStatus: strRef(vo.StatusCompleted.String()),
			RunMode:             vo.RunManual.String(),
			ButtonColor:         vo.ColorPrimary.String(),
			IsActive:            true,
		},
		{
			Slug:       "close_ticket",
			ActionType: vo.ActionNoop.String(),
			Label:      "Close Ticket",
			Description: "Closes the ticket without taking further action. " +
				"Use this when the ticket is no longer relevant or should not " +
				"be acted upon.",
			UpdatesTicketStatus: strRef(vo.StatusCompleted.String()),
			RunMode:             vo.RunManual.String(),
			ButtonColor:         vo.ColorDanger.String(),
			IsActive:            true,
		},
		{
			Slug:       "update_assignment_confirm",
			ActionType: vo.ActionUpdateShiftStatus.String(),
			Label:      "Confirmed",
			Description: "Updates the existing event assignment to indicate the person " +
				"is fully committed. " +
				"This action is useful when confirming participation.",
			Config:              statusConfig(evo.AssignmentConfirmed),
			UpdatesTicketStatus: strRef(vo.StatusCompleted.String()),
			RunMode:             vo.RunManual.String(),
			ButtonColor:         vo.ColorPrimary.String(),
			IsActive:            true,
		},
		{
			Slug:       "update_assignment_rejected",
			ActionType: vo.ActionUpdateShiftStatus.String(),
			Label:      "Not Interested",
			Description: "Updates the shift assignment to indicate the person is no longer " +
				"interested or has declined to participate.",
			Config:              statusConfig(evo.AssignmentDeclined),
			UpdatesTicketStatus: strRef(vo.StatusCompleted.String()),
			RunMode:             vo.RunManual.String(),
			ButtonColor:         vo.ColorDanger.String(),
			IsActive:            true,
		},
	}

	installed := make(map[string]models.ActionTemplateModel, len(templates))
	for _, template := range templates {
		template.ID = id.New()
		if err := db.Where(models.ActionTemplateModel{Slug: template.Slug}).
			FirstOrCreate(&template).Error; err != nil {
			return nil, fmt.Errorf("failed to seed action template %s: %w", template.Slug, err)
		}
		installed[template.Slug] = template
	}

	return installed, nil
}

// SeedTicketTemplates installs the global ticket templates and attaches
// their action templates. Attachments are only written when the template
// is created, so operator customizations survive reseeding.
func SeedTicketTemplates(db *gorm.DB, actions map[string]models.ActionTemplateModel) (map[string]models.TicketTemplateModel, error) {
	type templateDef struct {
		model       models.TicketTemplateModel
		actionSlugs []string
	}

	defs := []templateDef{
		{
			model: models.TicketTemplateModel{
				Name:         "Introduction",
				NameTemplate: "Introduce yourself to {{person.discord}}",
				DescriptionTemplate: "1. Mark ticket as in progress\n" +
					"\n" +
					"2. Find {{person.discord}} on discord.\n" +
					"\n" +
					"3. Copy the below text into a DM for {{person.discord}}\n" +
					"\n" +
					"```copy\n" +
					"Hi {{person.discord}},\n" +
					"\n" +
					"We noticed you joined the discord.\n" +
					"\n" +
					"We're happy you are here and wanted to know if you were " +
					"interested in volunteering?\n" +
					"\n" +
					"Please let us know!\n" +
					"```\n" +
					"\n" +
					"4. Await their response\n" +
					"\n" +
					"5. If they confirm their interest, click the `confirm` action button. " +
					"If they are not interested, click the `reject` action button.",
				DefaultPriority: 1,
				Claimable:       true,
				IsActive:        true,
			},
			actionSlugs: []string{"complete_ticket", "close_ticket"},
		},
		{
			model: models.TicketTemplateModel{
				Name:         "Recruit for Event",
				NameTemplate: "Recruit {{person.discord}} for {{event_title}}",
				DescriptionTemplate: "1. Mark ticket as in progress\n" +
					"\n" +
					"2. Find {{person.discord}} on discord.\n" +
					"\n" +
					"3. Copy the below text into a DM for {{person.discord}}\n" +
					"\n" +
					"```copy\n" +
					"Hi {{person.discord}},\n" +
					"\n" +
					"It is very important that we all put in the " +
					"effort to make a difference.\n" +
					"\n" +
					"Would you be interested in volunteering for " +
					"{{event_type}} on {{starts_at_date}}" +
					"at {{starts_at_time.cdt}}?\n" +
					"\n" +
					"Please let us know!\n" +
					"```\n" +
					"\n" +
					"4. Await their response\n" +
					"\n" +
					"5. If they confirm their interest, click the `confirm` action button. " +
					"If they are not interested, click the `reject` action button.\n",
				DefaultPriority: 1,
				Claimable:       true,
				IsActive:        true,
			},
			actionSlugs: []string{"create_assignment", "create_assignment_partial", "close_ticket"},
		},
		{
			model: models.TicketTemplateModel{
				Name:         "Reconfirmation",
				NameTemplate: "Reconfirm {{person.discord}} for {{event.title}}",
				DescriptionTemplate: "Hi {{person.discord}}!\n" +
					"Please reconfirm your availability for " +
					"**{{ event.title }}** on {{ starts_at_date }}.\n" +
					"See You soon!",
				DefaultPriority: 2,
				Claimable:       true,
				IsActive:        true,
			},
			actionSlugs: []string{"update_assignment_confirm", "update_assignment_rejected"},
		},
		{
			model: models.TicketTemplateModel{
				Name:         "Handout Phone Banks",
				NameTemplate: "Distribute phone numbers to {{person.discord}}",
				DescriptionTemplate: "Distribute phone bank materials for " +
					"**{{ event.title }}**." +
					"Contact {{event.owned_by}} for more details.",
				DefaultPriority: 3,
				Claimable:       false,
				IsActive:        true,
			},
			actionSlugs: []string{"complete_ticket", "close_ticket"},
		},
	}

	installed := make(map[string]models.TicketTemplateModel, len(defs))
	for _, def := range defs {
		template := def.model
		template.ID = id.New()
		template.ModifiedAt = time.Now().UnixMilli()

		var existing models.TicketTemplateModel
		err := db.Where("org_id IS NULL AND name = ?", template.Name).First(&existing).Error
		switch {
		case err == nil:
			installed[existing.Name] = existing
			continue
		case err != gorm.ErrRecordNotFound:
			return nil, fmt.Errorf("failed to look up ticket template %s: %w", template.Name, err)
		}

		if err := db.Create(&template).Error; err != nil {
			return nil, fmt.Errorf("failed to seed ticket template %s: %w", template.Name, err)
		}
		for i, slug := range def.actionSlugs {
			action, ok := actions[slug]
			if !ok {
				return nil, fmt.Errorf("ticket template %s references unknown action %s", template.Name, slug)
			}
			attachment := models.TicketTemplateActionModel{
				ID:               id.New(),
				TicketTemplateID: template.ID,
				ActionTemplateID: action.ID,
				Position:         i,
			}
			if err := db.Create(&attachment).Error; err != nil {
				return nil, fmt.Errorf("failed to attach action %s to template %s: %w", slug, template.Name, err)
			}
		}
		installed[template.Name] = template
	}

	return installed, nil
}

// SeedEventTemplates installs the global event templates and attaches the
// ticket templates each event kind generates tickets from.
func SeedEventTemplates(db *gorm.DB, tickets map[string]models.TicketTemplateModel) error {
	defs := []struct {
		name        string
		ticketNames []string
	}{
		{name: "Canvass", ticketNames: []string{"Recruit for Event", "Reconfirmation"}},
		{name: "Phone Bank", ticketNames: []string{"Recruit for Event", "Handout Phone Banks"}},
		{name: "Meetup", ticketNames: []string{"Recruit for Event"}},
		{name: "Training", ticketNames: []string{"Recruit for Event"}},
	}

	for _, def := range defs {
		var existing models.EventTemplateModel
		err := db.Where(models.EventTemplateModel{Name: def.name}).First(&existing).Error
		switch {
		case err == nil:
			continue
		case err != gorm.ErrRecordNotFound:
			return fmt.Errorf("failed to look up event template %s: %w", def.name, err)
		}

		template := models.EventTemplateModel{
			ID:   id.New(),
			Name: def.name,
		}
		if err := db.Create(&template).Error; err != nil {
			return fmt.Errorf("failed to seed event template %s: %w", def.name, err)
		}
		for i, ticketName := range def.ticketNames {
			ticketTemplate, ok := tickets[ticketName]
			if !ok {
				return fmt.Errorf("event template %s references unknown ticket template %s", def.name, ticketName)
			}
			attachment := models.EventTemplateTicketTemplateModel{
				ID:               id.New(),
				EventTemplateID:  template.ID,
				TicketTemplateID: ticketTemplate.ID,
				Position:         i,
			}
			if err := db.Create(&attachment).Error; err != nil {
				return fmt.Errorf("failed to attach ticket template %s to event template %s: %w", ticketName, def.name, err)
			}
		}
	}

	return nil
}
