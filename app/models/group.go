package models

type Group struct {
	Entity
	Title string `gorm:"size:100;not null"`
	Users []User
}
