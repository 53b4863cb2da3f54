package database

import (
	"gorm.io/gorm"

	"github.com/angeroddy/sceno-app-sub001/internal/models"
)

// Migrate applies the schema for every marketplace table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Annonceur{},
		&models.Comedien{},
		&models.Admin{},
		&models.Opportunite{},
		&models.Achat{},
		&models.Moderation{},
		&models.AnnonceurBloque{},
		&models.NotificationEmail{},
	)
}
