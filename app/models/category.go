package models

type Category struct {
	Entity
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Products    []Product
}
