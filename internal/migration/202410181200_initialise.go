package migration

import (
	"github.com/PayRam/go-chinook/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202410181200-ch-118204",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(
			&models.Artist{}, &models.Album{}, &models.Genre{}, &models.MediaType{}, &models.Track{},
			&models.Employee{}, &models.Customer{}, &models.Invoice{}, &models.InvoiceItem{},
		)
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(
			&models.InvoiceItem{}, &models.Invoice{}, &models.Customer{}, &models.Employee{},
			&models.Track{}, &models.MediaType{}, &models.Genre{}, &models.Album{}, &models.Artist{},
		)
	},
}
