package services

import (
	"context"
	"testing"
	"time"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProductFixtures(t *testing.T, conn *gorm.DB) (categoryID uint, storeIDs []uint) {
	t.Helper()
	ctx := context.Background()

	categoryResult, err := NewCategoryService(conn).Create(ctx, dto.CategoryRequest{Title: "Electronics"})
	require.NoError(t, err)
	require.True(t, categoryResult.Successful)

	stores := NewStoreService(conn)
	for _, name := range []string{"Migros", "Trendyol", "MediaMarkt"} {
		result, err := stores.Create(ctx, dto.StoreRequest{Name: name})
		require.NoError(t, err)
		require.True(t, result.Successful)
		storeIDs = append(storeIDs, result.ID)
	}
	return categoryResult.ID, storeIDs
}

func TestProductCreateRejectsDuplicateName(t *testing.T) {
	conn := newTestDB(t)
	categoryID, _ := seedProductFixtures(t, conn)
	service := NewProductService(conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.ProductRequest{
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(15000),
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.True(t, result.Successful)

	result, err = service.Create(ctx, dto.ProductRequest{
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(14000),
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Product with the same name exists!", result.Message)
}

func TestProductRejectsNonPositiveUnitPrice(t *testing.T) {
	conn := newTestDB(t)
	categoryID, _ := seedProductFixtures(t, conn)
	service := NewProductService(conn)
	ctx := context.Background()

	for _, price := range []decimal.Decimal{decimal.NewFromInt(-5), decimal.Zero} {
		result, err := service.Create(ctx, dto.ProductRequest{
			Name:       "Laptop",
			UnitPrice:  price,
			CategoryID: &categoryID,
		})
		require.NoError(t, err)
		assert.False(t, result.Successful)
		assert.Equal(t, "Unit price must be greater than zero!", result.Message)
	}

	var count int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	created, err := service.Create(ctx, dto.ProductRequest{
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(15000),
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.True(t, created.Successful)

	result, err := service.Update(ctx, dto.ProductRequest{
		ID:         created.ID,
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(-1),
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Unit price must be greater than zero!", result.Message)

	item, err := service.Item(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(15000)))
}

func TestProductUpdateRewritesStoreLinks(t *testing.T) {
	conn := newTestDB(t)
	categoryID, storeIDs := seedProductFixtures(t, conn)
	service := NewProductService(conn)
	ctx := context.Background()

	created, err := service.Create(ctx, dto.ProductRequest{
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(15000),
		CategoryID: &categoryID,
		StoreIDs:   []uint{storeIDs[0], storeIDs[1]},
	})
	require.NoError(t, err)
	require.True(t, created.Successful)

	result, err := service.Update(ctx, dto.ProductRequest{
		ID:         created.ID,
		Name:       "Laptop",
		UnitPrice:  decimal.NewFromInt(15000),
		CategoryID: &categoryID,
		StoreIDs:   []uint{storeIDs[2]},
	})
	require.NoError(t, err)
	require.True(t, result.Successful)

	var joins []models.ProductStore
	require.NoError(t, conn.Where("product_id = ?", created.ID).Find(&joins).Error)
	require.Len(t, joins, 1)
	assert.Equal(t, storeIDs[2], joins[0].StoreID)
}

func TestProductListFiltered(t *testing.T) {
	conn := newTestDB(t)
	categoryID, storeIDs := seedProductFixtures(t, conn)
	service := NewProductService(conn)
	ctx := context.Background()

	expiration := time.Date(2035, time.September, 19, 0, 0, 0, 0, time.UTC)
	stock := func(v int) *int { return &v }
	for _, request := range []dto.ProductRequest{
		{Name: "Hammer", UnitPrice: decimal.NewFromFloat(9.99), StockAmount: stock(25), CategoryID: &categoryID, StoreIDs: []uint{storeIDs[0]}},
		{Name: "Smartphone", UnitPrice: decimal.NewFromInt(8000), StockAmount: stock(50), CategoryID: &categoryID, StoreIDs: []uint{storeIDs[1]}},
		{Name: "Microwave Oven", UnitPrice: decimal.NewFromInt(3500), CategoryID: &categoryID},
		{Name: "Pain Killer", UnitPrice: decimal.NewFromInt(35), StockAmount: stock(300), ExpirationDate: &expiration, CategoryID: &categoryID},
	} {
		result, err := service.Create(ctx, request)
		require.NoError(t, err)
		require.True(t, result.Successful)
	}

	// substring match on name is case sensitive
	matches, err := service.ListFiltered(ctx, dto.ProductQueryRequest{Name: "Ham"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Hammer", matches[0].Name)

	matches, err = service.ListFiltered(ctx, dto.ProductQueryRequest{Name: "ham"})
	require.NoError(t, err)
	assert.Empty(t, matches)

	// a missing stock amount compares as zero
	matches, err = service.ListFiltered(ctx, dto.ProductQueryRequest{StockAmountEnd: stock(10)})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Microwave Oven", matches[0].Name)

	// price range
	start := decimal.NewFromInt(1000)
	end := decimal.NewFromInt(9000)
	matches, err = service.ListFiltered(ctx, dto.ProductQueryRequest{UnitPriceStart: &start, UnitPriceEnd: &end})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// store membership matches any of the submitted ids
	matches, err = service.ListFiltered(ctx, dto.ProductQueryRequest{StoreIDs: []uint{storeIDs[0], storeIDs[1]}})
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// expiration window only matches products that carry a date
	from := time.Date(2035, time.January, 1, 0, 0, 0, 0, time.UTC)
	matches, err = service.ListFiltered(ctx, dto.ProductQueryRequest{ExpirationDateStart: &from})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Pain Killer", matches[0].Name)
}

func TestProductListOrdering(t *testing.T) {
	conn := newTestDB(t)
	categoryID, _ := seedProductFixtures(t, conn)
	service := NewProductService(conn)
	ctx := context.Background()

	expiration := time.Date(2033, time.October, 29, 0, 0, 0, 0, time.UTC)
	stock := func(v int) *int { return &v }
	for _, request := range []dto.ProductRequest{
		{Name: "Jeans", UnitPrice: decimal.NewFromInt(350), StockAmount: stock(150), CategoryID: &categoryID},
		{Name: "Vitamin", UnitPrice: decimal.NewFromInt(85), StockAmount: stock(200), ExpirationDate: &expiration, CategoryID: &categoryID},
		{Name: "T-shirt", UnitPrice: decimal.NewFromInt(150), StockAmount: stock(150), CategoryID: &categoryID},
	} {
		result, err := service.Create(ctx, request)
		require.NoError(t, err)
		require.True(t, result.Successful)
	}

	products, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// dated products first, then by stock, ties broken by name
	assert.Equal(t, "Vitamin", products[0].Name)
	assert.Equal(t, "Jeans", products[1].Name)
	assert.Equal(t, "T-shirt", products[2].Name)
}
