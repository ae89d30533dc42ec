package dto

import (
	"time"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/shopspring/decimal"
)

type CategoryResponse struct {
	ID          uint
	Guid        string
	Title       string
	Description string
}

type ProductResponse struct {
	ID             uint
	Guid           string
	Name           string
	UnitPrice      decimal.Decimal
	UnitPriceF     string
	StockAmount    *int
	StockAmountF   string
	ExpirationDate *time.Time
	ExpirationDateF string
	CategoryID     uint
	Category       string
	StoreIDs       []uint
	Stores         []string
}

type StoreResponse struct {
	ID           uint
	Guid         string
	Name         string
	IsVirtual    bool
	IsVirtualF   string
	ProductCount int
	Products     []string
}

type CountryResponse struct {
	ID     uint
	Guid   string
	Name   string
	Cities []CityResponse
}

type CityResponse struct {
	ID        uint
	Guid      string
	Name      string
	Country   *CountryResponse
	ImagePath string
}

type GroupResponse struct {
	ID        uint
	Guid      string
	Title     string
	UserCount int
}

type RoleResponse struct {
	ID    uint
	Guid  string
	Name  string
	Users []string
}

type UserResponse struct {
	ID               uint
	Guid             string
	UserName         string
	IsActive         bool
	IsActiveF        string
	FirstName        string
	LastName         string
	FullName         string
	Gender           models.Gender
	GenderF          string
	BirthDate        *time.Time
	BirthDateF       string
	RegistrationDate time.Time
	RegistrationDateF string
	Score            decimal.Decimal
	ScoreF           string
	Address          string
	GroupID          *uint
	Group            string
	CountryID        *uint
	Country          string
	CityID           *uint
	City             string
	RoleIDs          []uint
	Roles            []string
}

// LocationResponse is one row of the country/city join listing. City
// fields are nil on left-join rows of countries without cities.
type LocationResponse struct {
	CountryID   uint
	CountryName string
	CityID      *uint
	CityName    *string
}
