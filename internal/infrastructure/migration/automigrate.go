// Package migration manages database schema migrations.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
	appLogger "github.com/libdough/openvolunteer/internal/shared/logger"
)

// AutoMigrateModels returns all models for auto-migration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.PersonModel{},
		&models.PersonOrgModel{},
		&models.TagModel{},
		&models.TaggingModel{},
		&models.EventModel{},
		&models.EventTemplateModel{},
		&models.EventTemplateTicketTemplateModel{},
		&models.ShiftModel{},
		&models.ShiftAssignmentModel{},
		&models.TicketTemplateModel{},
		&models.ActionTemplateModel{},
		&models.TicketTemplateActionModel{},
		&models.TicketModel{},
		&models.TicketBatchModel{},
		&models.TicketActionModel{},
		&models.TicketAuditLogModel{},
	}
}

// Run applies the schema for every registered model.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	appLogger.Info("database schema migrated", "models", len(AutoMigrateModels()))
	return nil
}
