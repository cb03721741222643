package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/libdough/openvolunteer/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	)
	require.NoError(t, err)

	return db
}

func strPtr(s string) *string { return &s }
