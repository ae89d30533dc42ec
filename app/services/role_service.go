package services

import (
	"context"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type RoleService struct {
	base *repositories.Base[models.Role]
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{base: repositories.NewBase[models.Role](db)}
}

func (s *RoleService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).Preload("UserRoles.User").Order("name")
}

func (s *RoleService) toResponse(entity *models.Role) dto.RoleResponse {
	users := make([]string, 0, len(entity.UserRoles))
	for _, ur := range entity.UserRoles {
		if ur.User != nil {
			users = append(users, ur.User.UserName)
		}
	}
	return dto.RoleResponse{
		ID:    entity.ID,
		Guid:  entity.Guid,
		Name:  entity.Name,
		Users: users,
	}
}

func (s *RoleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.RoleResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *RoleService) Item(ctx context.Context, id uint) (*dto.RoleResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "roles.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *RoleService) Edit(ctx context.Context, id uint) (*dto.RoleRequest, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	return &dto.RoleRequest{
		ID:   entity.ID,
		Name: entity.Name,
	}, nil
}

func (s *RoleService) Create(ctx context.Context, request dto.RoleRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("name = ?", name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Role with the same name exists!"), nil
	}

	entity := models.Role{Name: name}
	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Role created successfully.", entity.ID), nil
}

func (s *RoleService) Update(ctx context.Context, request dto.RoleRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("id <> ? AND name = ?", request.ID, name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Role with the same name exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Role not found!"), nil
	}

	entity.Name = name
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Role updated successfully.", entity.ID), nil
}

func (s *RoleService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Role not found!"), nil
	}

	if err := s.base.DB(ctx).Where("role_id = ?", entity.ID).Delete(&models.UserRole{}).Error; err != nil {
		return Result{}, err
	}
	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Role deleted successfully.", entity.ID), nil
}
