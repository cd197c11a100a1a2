package configs

import (
	"log"
	"os"
	"path/filepath"

	"savoria/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database file, creating the data directory if
// absent. The handle is passed down into the controllers; there is no
// package-level singleton.
func Connect(cfg *Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
}

// Migrate ensures all tables exist. Idempotent, runs on every boot.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Category{},
		&entity.Tag{},
		&entity.MenuItem{},
		&entity.MenuItemImage{},
		&entity.Location{},
		&entity.LocationImage{},
		&entity.User{},
	); err != nil {
		return err
	}

	// Databases created before categories carried updated_at need the column
	// added. "duplicate column" from current databases is expected; the patch
	// is best effort and never fatal.
	if !db.Migrator().HasColumn(&entity.Category{}, "updated_at") {
		if err := db.Migrator().AddColumn(&entity.Category{}, "UpdatedAt"); err != nil {
			log.Printf("schema patch skipped: %v", err)
		}
	}
	return nil
}
