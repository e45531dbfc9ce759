package db

import (
	"fmt"

	"github.com/PayRam/go-chinook/internal/migration"
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a connection to the sqlite database at dbFilePath without running migrations.
func Open(dbFilePath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// InitDB opens the database and brings the schema up to date.
func InitDB(dbFilePath string, log *logrus.Entry) (*gorm.DB, error) {
	db, err := Open(dbFilePath)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB, log *logrus.Entry) error {
	if err := migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infof("**** Database initialised and migrations run successfully ****")
	return nil
}

func migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID:       migration.Initialise.ID,
			Migrate:  migration.Initialise.Migrate,
			Rollback: migration.Initialise.Rollback,
		},
	})

	return m.Migrate()
}
