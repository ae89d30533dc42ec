package dto

import (
	"mime/multipart"
	"time"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	ID          uint   `form:"id"`
	Title       string `form:"title" validate:"required,max=100"`
	Description string `form:"description"`
}

type ProductRequest struct {
	ID             uint            `form:"id"`
	Name           string          `form:"name" validate:"required,max=150"`
	UnitPrice      decimal.Decimal `form:"unit_price" validate:"gt=0"`
	StockAmount    *int            `form:"stock_amount" validate:"omitempty,gte=0"`
	ExpirationDate *time.Time      `form:"expiration_date"`
	CategoryID     *uint           `form:"category_id" validate:"required"`
	StoreIDs       []uint          `form:"store_ids"`
}

type StoreRequest struct {
	ID        uint   `form:"id"`
	Name      string `form:"name" validate:"required,max=200"`
	IsVirtual bool   `form:"is_virtual"`
}

type CountryRequest struct {
	ID   uint   `form:"id"`
	Name string `form:"name" validate:"required,max=125"`
}

type CityRequest struct {
	ID        uint   `form:"id"`
	Name      string `form:"name" validate:"required,max=175"`
	CountryID *uint  `form:"country_id" validate:"required"`

	// optional uploaded city image, nil when the form carries no file
	Image *multipart.FileHeader `form:"-" validate:"-"`
}

type GroupRequest struct {
	ID    uint   `form:"id"`
	Title string `form:"title" validate:"required,max=100"`
}

type RoleRequest struct {
	ID   uint   `form:"id"`
	Name string `form:"name" validate:"required,max=25"`
}

type UserRequest struct {
	ID        uint             `form:"id"`
	UserName  string           `form:"user_name" validate:"required,min=3,max=30"`
	Password  string           `form:"password" validate:"required,min=4,max=15"`
	FirstName string           `form:"first_name" validate:"max=50"`
	LastName  string           `form:"last_name" validate:"max=50"`
	Gender    models.Gender    `form:"gender"`
	BirthDate *time.Time       `form:"birth_date"`
	Score     *decimal.Decimal `form:"score" validate:"omitempty,gte=0,lte=5"`
	IsActive  bool             `form:"is_active"`
	Address   string           `form:"address"`
	GroupID   *uint            `form:"group_id"`
	CountryID *uint            `form:"country_id"`
	CityID    *uint            `form:"city_id"`
	RoleIDs   []uint           `form:"role_ids"`
}

type LoginRequest struct {
	UserName string `form:"user_name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type RegisterRequest struct {
	UserName        string `form:"user_name" validate:"required,min=3,max=30"`
	Password        string `form:"password" validate:"required,min=4,max=15"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// ProductQueryRequest narrows the product listing. Nil fields are not
// applied; a nil stock amount on a row compares as zero.
type ProductQueryRequest struct {
	Name                string
	UnitPriceStart      *decimal.Decimal
	UnitPriceEnd        *decimal.Decimal
	StockAmountStart    *int
	StockAmountEnd      *int
	ExpirationDateStart *time.Time
	ExpirationDateEnd   *time.Time
	CategoryID          *uint
	StoreIDs            []uint
}

// Ordering targets accepted by LocationQueryRequest.OrderBy.
const (
	OrderByCountryName = "CountryName"
	OrderByCityName    = "CityName"
)

// LocationQueryRequest carries filter, order and paging options of the
// country/city join listing. TotalCount is written back by the service
// with the filtered, pre-paging row count.
type LocationQueryRequest struct {
	CountryName  string `form:"country_name"`
	CityName     string `form:"city_name"`
	PageNumber   int    `form:"page_number"`
	CountPerPage int    `form:"count_per_page"`
	TotalCount   int    `form:"-"`
	OrderBy      string `form:"order_by"`
	Descending   bool   `form:"descending"`
}
