package db

import (
	"github.com/noteagent/noteagent/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a pooled connection to the database. The handle is returned
// rather than stored in a package variable so callers pass it explicitly.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(database *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Workspace{},
		&models.Note{},
	}

	migrator := database.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := database.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
