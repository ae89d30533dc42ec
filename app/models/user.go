package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender int

const (
	GenderMan Gender = iota
	GenderWoman
)

func (g Gender) String() string {
	if g == GenderWoman {
		return "Woman"
	}
	return "Man"
}

type User struct {
	Entity
	UserName         string `gorm:"size:30;not null;index"`
	Password         string `gorm:"size:255;not null"`
	FirstName        string `gorm:"size:50"`
	LastName         string `gorm:"size:50"`
	Gender           Gender
	BirthDate        *time.Time
	RegistrationDate time.Time
	Score            decimal.Decimal `gorm:"type:decimal(3,1)"`
	IsActive         bool
	Address          string `gorm:"type:text"`
	GroupID          *uint  `gorm:"index"`
	Group            *Group
	CountryID        *uint `gorm:"index"`
	Country          *Country
	CityID           *uint `gorm:"index"`
	City             *City
	UserRoles        []UserRole
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RoleIDs collects the role foreign keys of the loaded join rows.
func (u *User) RoleIDs() []uint {
	ids := make([]uint, 0, len(u.UserRoles))
	for _, ur := range u.UserRoles {
		ids = append(ids, ur.RoleID)
	}
	return ids
}

// RoleNames collects the role names of the loaded join rows.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.UserRoles))
	for _, ur := range u.UserRoles {
		if ur.Role != nil {
			names = append(names, ur.Role.Name)
		}
	}
	return names
}

// UserRole is the join entity of the user/role many-to-many
// association. Rows are deleted and rebuilt wholesale on every user
// update.
type UserRole struct {
	Entity
	UserID uint `gorm:"index"`
	User   *User
	RoleID uint `gorm:"index"`
	Role   *Role
}
