package db

import (
	"flagit/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle is
// passed to services explicitly; there is no package-level connection.
// TranslateError lets callers detect unique-key violations as
// gorm.ErrDuplicatedKey regardless of driver.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Item{},
		&models.Vote{},
		&models.Comment{},
		&models.Credential{},
	)
}
