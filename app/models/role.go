package models

type Role struct {
	Entity
	Name      string `gorm:"size:25;not null"`
	UserRoles []UserRole
}

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)
