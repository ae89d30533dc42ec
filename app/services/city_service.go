package services

import (
	"context"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"github.com/dtezcan/go-catalog/app/utils/files"
	"gorm.io/gorm"
)

type CityService struct {
	base  *repositories.Base[models.City]
	files *files.FileService
}

func NewCityService(db *gorm.DB, fileService *files.FileService) *CityService {
	return &CityService{
		base:  repositories.NewBase[models.City](db),
		files: fileService,
	}
}

func (s *CityService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).
		Joins("Country").
		Preload("Users").
		Order("Country.name, cities.name")
}

func (s *CityService) toResponse(entity *models.City) dto.CityResponse {
	response := dto.CityResponse{
		ID:   entity.ID,
		Guid: entity.Guid,
		Name: entity.Name,
		Country: &dto.CountryResponse{
			ID:   entity.Country.ID,
			Guid: entity.Country.Guid,
			Name: entity.Country.Name,
		},
	}
	if entity.ImagePath != nil {
		response.ImagePath = *entity.ImagePath
	}
	return response
}

func (s *CityService) List(ctx context.Context) ([]dto.CityResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CityResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

// ListByCountry returns the cities of one country ordered by name. The
// city dropdown of the user form loads from it when a country is picked.
func (s *CityService) ListByCountry(ctx context.Context, countryID uint) ([]dto.CityResponse, error) {
	query := s.base.Query(ctx).Where("country_id = ?", countryID).Order("name")
	entities, err := s.base.All(ctx, query)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CityResponse, 0, len(entities))
	for i := range entities {
		city := &entities[i]
		response := dto.CityResponse{
			ID:   city.ID,
			Guid: city.Guid,
			Name: city.Name,
		}
		if city.ImagePath != nil {
			response.ImagePath = *city.ImagePath
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *CityService) Item(ctx context.Context, id uint) (*dto.CityResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "cities.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *CityService) Edit(ctx context.Context, id uint) (*dto.CityRequest, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	countryID := entity.CountryID
	return &dto.CityRequest{
		ID:        entity.ID,
		Name:      entity.Name,
		CountryID: &countryID,
	}, nil
}

func (s *CityService) Create(ctx context.Context, request dto.CityRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("name = ?", name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("City with the same name exists!"), nil
	}

	entity := models.City{Name: name}
	if request.CountryID != nil {
		entity.CountryID = *request.CountryID
	}

	if request.Image != nil {
		path := s.files.FilePath(request.Image)
		if err := s.files.SaveFile(request.Image, path); err != nil {
			return Result{}, err
		}
		entity.ImagePath = &path
	}

	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("City created successfully.", entity.ID), nil
}

func (s *CityService) Update(ctx context.Context, request dto.CityRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("id <> ? AND name = ?", request.ID, name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("City with the same name exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("City not found!"), nil
	}

	entity.Name = name
	if request.CountryID != nil {
		entity.CountryID = *request.CountryID
	}

	if request.Image != nil {
		path := s.files.FilePath(request.Image)
		if err := s.files.SaveFile(request.Image, path); err != nil {
			return Result{}, err
		}
		if entity.ImagePath != nil {
			s.files.DeleteFile(*entity.ImagePath)
		}
		entity.ImagePath = &path
	}

	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("City updated successfully.", entity.ID), nil
}

// DeleteImage detaches and removes the uploaded image of a city without
// touching the row's other columns.
func (s *CityService) DeleteImage(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("City not found!"), nil
	}

	if entity.ImagePath != nil {
		s.files.DeleteFile(*entity.ImagePath)
		entity.ImagePath = nil
		if err := s.base.DB(ctx).Model(entity).Update("image_path", nil).Error; err != nil {
			return Result{}, err
		}
	}
	return success("City image deleted successfully.", entity.ID), nil
}

func (s *CityService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx).Preload("Users"), "id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("City not found!"), nil
	}

	if len(entity.Users) > 0 {
		return failure("City can't be deleted because it has relational users!"), nil
	}

	if entity.ImagePath != nil {
		s.files.DeleteFile(*entity.ImagePath)
	}

	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("City deleted successfully.", entity.ID), nil
}
