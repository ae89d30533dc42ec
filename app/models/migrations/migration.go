package migrations

import (
	"github.com/dtezcan/go-catalog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Store{},
		&models.ProductStore{},
		&models.Country{},
		&models.City{},
		&models.Group{},
		&models.Role{},
		&models.User{},
		&models.UserRole{},
	)
}
