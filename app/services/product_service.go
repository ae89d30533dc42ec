package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"github.com/dtezcan/go-catalog/app/utils/format"
	"gorm.io/gorm"
)

type ProductService struct {
	base *repositories.Base[models.Product]
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{base: repositories.NewBase[models.Product](db)}
}

// query eager-loads the category and the store associations and applies
// the default listing order: soonest-expiring last, then by stock, then
// by name.
func (s *ProductService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).
		Preload("Category").
		Preload("ProductStores.Store").
		Order("expiration_date DESC").
		Order("stock_amount DESC").
		Order("name")
}

func (s *ProductService) toResponse(entity *models.Product) dto.ProductResponse {
	stores := make([]string, 0, len(entity.ProductStores))
	for _, ps := range entity.ProductStores {
		if ps.Store != nil {
			stores = append(stores, ps.Store.Name)
		}
	}

	stockAmount := 0
	if entity.StockAmount != nil {
		stockAmount = *entity.StockAmount
	}

	return dto.ProductResponse{
		ID:              entity.ID,
		Guid:            entity.Guid,
		Name:            entity.Name,
		UnitPrice:       entity.UnitPrice,
		UnitPriceF:      format.Currency(entity.UnitPrice),
		StockAmount:     entity.StockAmount,
		StockAmountF:    strconv.Itoa(stockAmount),
		ExpirationDate:  entity.ExpirationDate,
		ExpirationDateF: format.Date(entity.ExpirationDate),
		CategoryID:      entity.CategoryID,
		Category:        entity.Category.Title,
		StoreIDs:        entity.StoreIDs(),
		Stores:          stores,
	}
}

func (s *ProductService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ProductResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

// ListFiltered narrows the listing by the query request. Filters are
// only applied for fields that carry a value; a product without a stock
// amount is treated as having zero stock.
func (s *ProductService) ListFiltered(ctx context.Context, request dto.ProductQueryRequest) ([]dto.ProductResponse, error) {
	query := s.query(ctx)

	if strings.TrimSpace(request.Name) != "" {
		query = query.Where("instr(products.name, ?) > 0", strings.TrimSpace(request.Name))
	}
	if request.UnitPriceStart != nil {
		query = query.Where("unit_price >= ?", *request.UnitPriceStart)
	}
	if request.UnitPriceEnd != nil {
		query = query.Where("unit_price <= ?", *request.UnitPriceEnd)
	}
	if request.StockAmountStart != nil {
		query = query.Where("COALESCE(stock_amount, 0) >= ?", *request.StockAmountStart)
	}
	if request.StockAmountEnd != nil {
		query = query.Where("COALESCE(stock_amount, 0) <= ?", *request.StockAmountEnd)
	}
	if request.ExpirationDateStart != nil {
		query = query.Where("expiration_date IS NOT NULL AND DATE(expiration_date) >= DATE(?)", *request.ExpirationDateStart)
	}
	if request.ExpirationDateEnd != nil {
		query = query.Where("expiration_date IS NOT NULL AND DATE(expiration_date) <= DATE(?)", *request.ExpirationDateEnd)
	}
	if request.CategoryID != nil {
		query = query.Where("category_id = ?", *request.CategoryID)
	}
	if len(request.StoreIDs) > 0 {
		query = query.Where("EXISTS (SELECT 1 FROM product_stores ps WHERE ps.product_id = products.id AND ps.store_id IN ?)", request.StoreIDs)
	}

	entities, err := s.base.All(ctx, query)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ProductResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *ProductService) Item(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "products.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

func (s *ProductService) Edit(ctx context.Context, id uint) (*dto.ProductRequest, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "products.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	categoryID := entity.CategoryID
	return &dto.ProductRequest{
		ID:             entity.ID,
		Name:           entity.Name,
		UnitPrice:      entity.UnitPrice,
		StockAmount:    entity.StockAmount,
		ExpirationDate: entity.ExpirationDate,
		CategoryID:     &categoryID,
		StoreIDs:       entity.StoreIDs(),
	}, nil
}

func (s *ProductService) Create(ctx context.Context, request dto.ProductRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	if !request.UnitPrice.IsPositive() {
		return failure("Unit price must be greater than zero!"), nil
	}

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("name = ?", name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Product with the same name exists!"), nil
	}

	var categoryID uint
	if request.CategoryID != nil {
		categoryID = *request.CategoryID
	}

	entity := models.Product{
		Name:           name,
		UnitPrice:      request.UnitPrice,
		StockAmount:    request.StockAmount,
		ExpirationDate: request.ExpirationDate,
		CategoryID:     categoryID,
	}
	for _, storeID := range request.StoreIDs {
		entity.ProductStores = append(entity.ProductStores, models.ProductStore{StoreID: storeID})
	}

	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Product created successfully.", entity.ID), nil
}

func (s *ProductService) Update(ctx context.Context, request dto.ProductRequest) (Result, error) {
	name := strings.TrimSpace(request.Name)

	if !request.UnitPrice.IsPositive() {
		return failure("Unit price must be greater than zero!"), nil
	}

	exists, err := s.base.Exists(ctx, s.base.Query(ctx).Where("id <> ? AND name = ?", request.ID, name))
	if err != nil {
		return Result{}, err
	}
	if exists {
		return failure("Product with the same name exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Product not found!"), nil
	}

	// the store set is replaced wholesale, no incremental diff
	if err := s.base.DB(ctx).Where("product_id = ?", entity.ID).Delete(&models.ProductStore{}).Error; err != nil {
		return Result{}, err
	}

	var categoryID uint
	if request.CategoryID != nil {
		categoryID = *request.CategoryID
	}

	entity.Name = name
	entity.UnitPrice = request.UnitPrice
	entity.StockAmount = request.StockAmount
	entity.ExpirationDate = request.ExpirationDate
	entity.CategoryID = categoryID
	entity.ProductStores = nil
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}

	for _, storeID := range request.StoreIDs {
		join := models.ProductStore{ProductID: entity.ID, StoreID: storeID}
		if err := s.base.DB(ctx).Create(&join).Error; err != nil {
			return Result{}, err
		}
	}
	return success("Product updated successfully.", entity.ID), nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Product not found!"), nil
	}

	if err := s.base.DB(ctx).Where("product_id = ?", id).Delete(&models.ProductStore{}).Error; err != nil {
		return Result{}, err
	}
	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("Product deleted successfully.", entity.ID), nil
}
