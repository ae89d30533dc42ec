package services

import (
	"context"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type GroupService struct {
	base *repositories.Base[models.Group]
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{base: repositories.NewBase[models.Group](db)}
}

func (s *GroupService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).Preload("Users").Order("title")
}

func (s *GroupService) toResponse(entity *models.Group) dto.GroupResponse {
	return dto.GroupResponse{
		ID:        entity.ID,
		Guid:      entity.Guid,
		Title:     entity.Title,
		UserCount: len(entity.Users),
	}
}

func (s *GroupService) List(ctx context.Context) ([]dto.GroupResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.GroupResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *GroupService) Item(ctx context.Context, id uint) (*dto.GroupResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "groups.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *GroupService) Edit(ctx context.Context, id uint) (*dto.GroupRequest, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	return &dto.GroupRequest{
		ID:    entity.ID,
		Title: entity.Title,
	}, nil
}

func (s *GroupService) Create(ctx context.Context, request dto.GroupRequest) (Result, error) {
	title := strings.TrimSpace(request.Title)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("title = ?", title))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Group with the same title exists!"), nil
	}

	entity := models.Group{Title: title}
	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Group created successfully.", entity.ID), nil
}

func (s *GroupService) Update(ctx context.Context, request dto.GroupRequest) (Result, error) {
	title := strings.TrimSpace(request.Title)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("id <> ? AND title = ?", request.ID, title))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Group with the same title exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Group not found!"), nil
	}

	entity.Title = title
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Group updated successfully.", entity.ID), nil
}

func (s *GroupService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "groups.id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Group not found!"), nil
	}

	if len(entity.Users) > 0 {
		return failure("Group can't be deleted because it has relational users!"), nil
	}

	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Group deleted successfully.", entity.ID), nil
}
