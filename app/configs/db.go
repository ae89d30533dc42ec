package configs

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenConnection() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(LoadENV.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", LoadENV.DBPath, err)
	}

	return db, nil
}
