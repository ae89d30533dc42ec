package services

import (
	"context"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"gorm.io/gorm"
)

type StoreService struct {
	base *repositories.Base[models.Store]
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{base: repositories.NewBase[models.Store](db)}
}

func (s *StoreService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).
		Preload("ProductStores.Product").
		Order("is_virtual").Order("name")
}

func isVirtualLabel(isVirtual bool) string {
	if isVirtual {
		return "Virtual"
	}
	return "Physical"
}

func (s *StoreService) toResponse(entity *models.Store) dto.StoreResponse {
	products := make([]string, 0, len(entity.ProductStores))
	for _, ps := range entity.ProductStores {
		if ps.Product != nil {
			products = append(products, ps.Product.Name)
		}
	}
	return dto.StoreResponse{
		ID:           entity.ID,
		Guid:         entity.Guid,
		Name:         entity.Name,
		IsVirtual:    entity.IsVirtual,
		IsVirtualF:   isVirtualLabel(entity.IsVirtual),
		ProductCount: len(entity.ProductStores),
		Products:     products,
	}
}

func (s *StoreService) List(ctx context.Context) ([]dto.StoreResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.StoreResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *StoreService) Item(ctx context.Context, id uint) (*dto.StoreResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "stores.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *StoreService) Edit(ctx context.Context, id uint) (*dto.StoreRequest, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "stores.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	return &dto.StoreRequest{
		ID:        entity.ID,
		Name:      entity.Name,
		IsVirtual: entity.IsVirtual,
	}, nil
}

func (s *StoreService) Create(ctx context.Context, request dto.StoreRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	// a physical and a virtual store may share a name, the check is
	// case-insensitive within the same flag
	exists, err := s.base.Exists(ctx, s.base.Query(ctx).
		Where("UPPER(name) = UPPER(?) AND is_virtual = ?", name, request.IsVirtual))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure(isVirtualLabel(request.IsVirtual) + " store with the same name exists!"), nil
	}

	entity := models.Store{
		Name:      name,
		IsVirtual: request.IsVirtual,
	}
	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Store created successfully.", entity.ID), nil
}

func (s *StoreService) Update(ctx context.Context, request dto.StoreRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).
		Where("id <> ? AND UPPER(name) = UPPER(?) AND is_virtual = ?", request.ID, name, request.IsVirtual))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure(isVirtualLabel(request.IsVirtual) + " store with the same name exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Store not found!"), nil
	}

	entity.Name = name
	entity.IsVirtual = request.IsVirtual
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Store updated successfully.", entity.ID), nil
}

func (s *StoreService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Store not found!"), nil
	}

	// join rows go first, the association does not block deletion
	if err := s.base.DB(ctx).Where("store_id = ?", id).Delete(&models.ProductStore{}).Error; err != nil {
		return Result{}, err
	}
	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Store deleted successfully.", entity.ID), nil
}
