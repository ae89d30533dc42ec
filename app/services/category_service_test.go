package services

import (
	"context"
	"testing"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateRejectsDuplicateTitle(t *testing.T) {
	conn := newTestDB(t)
	service := NewCategoryService(conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.CategoryRequest{Title: "Tools"})
	require.NoError(t, err)
	require.True(t, result.Successful)
	assert.NotZero(t, result.ID)

	result, err = service.Create(ctx, dto.CategoryRequest{Title: "Tools"})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Category with the same title exists!", result.Message)

	var count int64
	require.NoError(t, conn.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryCreateTrimsTitle(t *testing.T) {
	conn := newTestDB(t)
	service := NewCategoryService(conn)
	ctx := context.Background()

	result, err := service.Create(ctx, dto.CategoryRequest{Title: "  Tools  "})
	require.NoError(t, err)
	require.True(t, result.Successful)

	item, err := service.Item(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Tools", item.Title)

	// the duplicate check runs against the trimmed title
	result, err = service.Create(ctx, dto.CategoryRequest{Title: "Tools "})
	require.NoError(t, err)
	assert.False(t, result.Successful)
}

func TestCategoryUpdateMissingRow(t *testing.T) {
	conn := newTestDB(t)
	service := NewCategoryService(conn)

	result, err := service.Update(context.Background(), dto.CategoryRequest{ID: 42, Title: "Ghost"})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Category not found!", result.Message)
}

func TestCategoryUpdateRejectsCollidingTitle(t *testing.T) {
	conn := newTestDB(t)
	service := NewCategoryService(conn)
	ctx := context.Background()

	first, err := service.Create(ctx, dto.CategoryRequest{Title: "Tools"})
	require.NoError(t, err)
	second, err := service.Create(ctx, dto.CategoryRequest{Title: "Garden"})
	require.NoError(t, err)

	result, err := service.Update(ctx, dto.CategoryRequest{ID: second.ID, Title: "Tools"})
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Category with the same title exists!", result.Message)

	// saving a row under its own current title stays allowed
	result, err = service.Update(ctx, dto.CategoryRequest{ID: first.ID, Title: "Tools", Description: "hand tools"})
	require.NoError(t, err)
	assert.True(t, result.Successful)
}

func TestCategoryDeleteBlockedByProducts(t *testing.T) {
	conn := newTestDB(t)
	categories := NewCategoryService(conn)
	products := NewProductService(conn)
	ctx := context.Background()

	created, err := categories.Create(ctx, dto.CategoryRequest{Title: "Tools"})
	require.NoError(t, err)
	require.True(t, created.Successful)

	categoryID := created.ID
	productResult, err := products.Create(ctx, dto.ProductRequest{
		Name:       "Hammer",
		UnitPrice:  decimal.NewFromFloat(9.99),
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.True(t, productResult.Successful)

	result, err := categories.Delete(ctx, categoryID)
	require.NoError(t, err)
	assert.False(t, result.Successful)
	assert.Equal(t, "Category can't be deleted because it has relational products!", result.Message)

	result, err = products.Delete(ctx, productResult.ID)
	require.NoError(t, err)
	require.True(t, result.Successful)

	result, err = categories.Delete(ctx, categoryID)
	require.NoError(t, err)
	assert.True(t, result.Successful)

	item, err := categories.Item(ctx, categoryID)
	require.NoError(t, err)
	assert.Nil(t, item)
}
