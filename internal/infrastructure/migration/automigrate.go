package migration

import (
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models the development strategy creates.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AirlineModel{},
		&models.OfficeModel{},
		&models.ContactModel{},
	}
}
