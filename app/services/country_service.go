package services

import (
	"context"
	"sort"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type CountryService struct {
	base *repositories.Base[models.Country]
}

func NewCountryService(db *gorm.DB) *CountryService {
	return &CountryService{base: repositories.NewBase[models.Country](db)}
}

func (s *CountryService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).Preload("Cities").Order("name")
}

func (s *CountryService) toResponse(entity *models.Country) dto.CountryResponse {
	cities := make([]dto.CityResponse, 0, len(entity.Cities))
	for i := range entity.Cities {
		city := &entity.Cities[i]
		response := dto.CityResponse{
			ID:   city.ID,
			Guid: city.Guid,
			Name: city.Name,
		}
		if city.ImagePath != nil {
			response.ImagePath = *city.ImagePath
		}
		cities = append(cities, response)
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })

	return dto.CountryResponse{
		ID:     entity.ID,
		Guid:   entity.Guid,
		Name:   entity.Name,
		Cities: cities,
	}
}

func (s *CountryService) List(ctx context.Context) ([]dto.CountryResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CountryResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *CountryService) Item(ctx context.Context, id uint) (*dto.CountryResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "countries.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *CountryService) Edit(ctx context.Context, id uint) (*dto.CountryRequest, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "countries.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	return &dto.CountryRequest{
		ID:   entity.ID,
		Name: entity.Name,
	}, nil
}

func (s *CountryService) Create(ctx context.Context, request dto.CountryRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("name = ?", name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Country with the same name exists!"), nil
	}

	entity := models.Country{Name: name}
	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Country created successfully.", entity.ID), nil
}

func (s *CountryService) Update(ctx context.Context, request dto.CountryRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("id <> ? AND name = ?", request.ID, name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Country with the same name exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Country not found!"), nil
	}

	entity.Name = name
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Country updated successfully.", entity.ID), nil
}

func (s *CountryService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "countries.id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Country not found!"), nil
	}

	if len(entity.Cities) > 0 {
		return failure("Country can't be deleted because it has relational cities!"), nil
	}

	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Country deleted successfully.", entity.ID), nil
}
