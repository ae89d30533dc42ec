package services

import (
	"context"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type CategoryService struct {
	base *repositories.Base[models.Category]
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{base: repositories.NewBase[models.Category](db)}
}

// query eager-loads the relational products, needed by the delete
// check.
func (s *CategoryService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).Preload("Products")
}

func (s *CategoryService) toResponse(entity *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          entity.ID,
		Guid:        entity.Guid,
		Title:       entity.Title,
		Description: entity.Description,
	}
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.CategoryResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *CategoryService) Item(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "categories.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *CategoryService) Edit(ctx context.Context, id uint) (*dto.CategoryRequest, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "categories.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	return &dto.CategoryRequest{
		ID:          entity.ID,
		Title:       entity.Title,
		Description: entity.Description,
	}, nil
}

func (s *CategoryService) Create(ctx context.Context, request dto.CategoryRequest) (Result, error) {
	title := strings.TrimSpace(request.Title)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("title = ?", title))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Category with the same title exists!"), nil
	}

	entity := models.Category{
		Title:       title,
		Description: strings.TrimSpace(request.Description),
	}
	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Category created successfully.", entity.ID), nil
}

func (s *CategoryService) Update(ctx context.Context, request dto.CategoryRequest) (Result, error) {
	title := strings.TrimSpace(request.Title)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("id <> ? AND title = ?", request.ID, title))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Category with the same title exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Category not found!"), nil
	}

	entity.Title = title
	entity.Description = strings.TrimSpace(request.Description)
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Category updated successfully.", entity.ID), nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "categories.id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Category not found!"), nil
	}

	if len(entity.Products) > 0 {
		return failure("Category can't be deleted because it has relational products!"), nil
	}

	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Category deleted successfully.", entity.ID), nil
}
