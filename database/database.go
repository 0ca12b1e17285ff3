package database

import (
	"fmt"

	"backend/config"
	"backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the configured database and migrates the transaction
// model. The returned handle is shared by every request; gorm's connection
// pool makes it safe for concurrent use.
func ConnectDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		dialector = mysql.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.ProductTransaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate the database: %w", err)
	}

	return db, nil
}
