package models

type Country struct {
	Entity
	Name   string `gorm:"size:125;not null"`
	Cities []City
	Users  []User
}
