package services

import (
	"context"

	"github.com/dtezcan/go-catalog/app/models/dto"
	"gorm.io/gorm"
)

// LocationService lists (country, city) pairs through two join
// strategies over the countries and cities tables.
type LocationService struct {
	db *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{db: db}
}

// joinQuery builds one fresh filtered join query. Building it twice per
// request keeps the count query and the row query from sharing clause
// state.
func (s *LocationService) joinQuery(ctx context.Context, join string, request *dto.LocationQueryRequest) *gorm.DB {
	query := s.db.WithContext(ctx).
		Table("countries").
		Joins(join)

	// instr keeps substring matching case sensitive; LIKE is not on
	// this database engine
	if request.CountryName != "" {
		query = query.Where("instr(countries.name, ?) > 0", request.CountryName)
	}
	if request.CityName != "" {
		query = query.Where("instr(cities.name, ?) > 0", request.CityName)
	}
	return query
}

func orderClause(request *dto.LocationQueryRequest) string {
	column := "countries.name"
	if request.OrderBy == dto.OrderByCityName {
		column = "cities.name"
	}
	if request.Descending {
		return column + " DESC"
	}
	return column
}

func (s *LocationService) list(ctx context.Context, join string, request *dto.LocationQueryRequest) ([]dto.LocationResponse, error) {
	var total int64
	if err := s.joinQuery(ctx, join, request).Count(&total).Error; err != nil {
		return nil, err
	}
	request.TotalCount = int(total)

	query := s.joinQuery(ctx, join, request).
		Select("countries.id AS country_id, countries.name AS country_name, cities.id AS city_id, cities.name AS city_name").
		Order(orderClause(request))

	if request.PageNumber > 0 && request.CountPerPage > 0 {
		query = query.
			Offset((request.PageNumber - 1) * request.CountPerPage).
			Limit(request.CountPerPage)
	}

	responses := make([]dto.LocationResponse, 0)
	if err := query.Scan(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

// InnerJoinList returns only the pairs where a city exists.
func (s *LocationService) InnerJoinList(ctx context.Context, request *dto.LocationQueryRequest) ([]dto.LocationResponse, error) {
	return s.list(ctx, "INNER JOIN cities ON cities.country_id = countries.id", request)
}

// LeftJoinList returns every country, with nil city fields on countries
// without cities. A city name filter still drops those rows: a null
// city name never contains a non-empty substring.
func (s *LocationService) LeftJoinList(ctx context.Context, request *dto.LocationQueryRequest) ([]dto.LocationResponse, error) {
	return s.list(ctx, "LEFT JOIN cities ON cities.country_id = countries.id", request)
}
