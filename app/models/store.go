package models

type Store struct {
	Entity
	Name          string `gorm:"size:200;not null"`
	IsVirtual     bool
	ProductStores []ProductStore
}
