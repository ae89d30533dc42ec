package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCartStore stands in for the cookie-backed cart in tests.
type memoryCartStore struct {
	items []models.CartItem
}

func (m *memoryCartStore) GetCart(_ *http.Request) []models.CartItem {
	return m.items
}

func (m *memoryCartStore) SetCart(_ http.ResponseWriter, _ *http.Request, items []models.CartItem) error {
	m.items = items
	return nil
}

func newCartFixture(t *testing.T) (*CartService, *memoryCartStore, uint) {
	t.Helper()
	conn := newTestDB(t)
	ctx := context.Background()

	categoryResult, err := NewCategoryService(conn).Create(ctx, dto.CategoryRequest{Title: "Electronics"})
	require.NoError(t, err)
	require.True(t, categoryResult.Successful)

	products := NewProductService(conn)
	productResult, err := products.Create(ctx, dto.ProductRequest{
		Name:       "Headphones",
		UnitPrice:  decimal.NewFromInt(1200),
		CategoryID: &categoryResult.ID,
	})
	require.NoError(t, err)
	require.True(t, productResult.Successful)

	store := &memoryCartStore{}
	return NewCartService(store, products), store, productResult.ID
}

func mustAddToCart(t *testing.T, service *CartService, w http.ResponseWriter, r *http.Request, userID, productID uint) {
	t.Helper()
	added, err := service.AddToCart(context.Background(), w, r, userID, productID)
	require.NoError(t, err)
	require.True(t, added)
}

func TestCartAddGroupsDuplicateEntries(t *testing.T) {
	service, _, productID := newCartFixture(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/add", nil)

	mustAddToCart(t, service, w, r, 1, productID)
	mustAddToCart(t, service, w, r, 1, productID)

	groups := service.GetCartGroupedBy(r, 1)
	require.Len(t, groups, 1)
	assert.Equal(t, "Headphones", groups[0].ProductName)
	assert.Equal(t, 2, groups[0].ProductCount)
	assert.True(t, groups[0].TotalPrice.Equal(decimal.NewFromInt(2400)))
	assert.NotEmpty(t, groups[0].TotalPriceF)
}

func TestCartAddUnknownProductIsNoOp(t *testing.T) {
	service, store, _ := newCartFixture(t)
	ctx := context.Background()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/add", nil)

	added, err := service.AddToCart(ctx, w, r, 1, 9999)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, store.items)
}

func TestCartRemoveTakesOutOneEntry(t *testing.T) {
	service, _, productID := newCartFixture(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/add", nil)

	mustAddToCart(t, service, w, r, 1, productID)
	mustAddToCart(t, service, w, r, 1, productID)
	require.NoError(t, service.RemoveFromCart(w, r, 1, productID))

	items := service.GetCart(r, 1)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ProductID)
}

func TestCartIsScopedToUser(t *testing.T) {
	service, store, productID := newCartFixture(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/add", nil)

	mustAddToCart(t, service, w, r, 1, productID)
	mustAddToCart(t, service, w, r, 2, productID)
	mustAddToCart(t, service, w, r, 2, productID)

	assert.Len(t, service.GetCart(r, 1), 1)
	assert.Len(t, service.GetCart(r, 2), 2)

	// clearing one user leaves the other's entries in place
	require.NoError(t, service.ClearCart(w, r, 2))
	assert.Empty(t, service.GetCart(r, 2))
	require.Len(t, store.items, 1)
	assert.Equal(t, uint(1), store.items[0].UserID)
}
