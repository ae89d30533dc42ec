package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/dtezcan/go-catalog/app/db"
	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/dtezcan/go-catalog/app/utils/renderer"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func newCartHandler(t *testing.T) (*CartHandler, uint) {
	t.Helper()
	conn, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(conn) })
	ctx := context.Background()

	categoryResult, err := services.NewCategoryService(conn).Create(ctx, dto.CategoryRequest{Title: "Electronics"})
	require.NoError(t, err)
	require.True(t, categoryResult.Successful)

	products := services.NewProductService(conn)
	productResult, err := products.Create(ctx, dto.ProductRequest{
		Name:       "Headphones",
		UnitPrice:  decimal.NewFromInt(1200),
		CategoryID: &categoryResult.ID,
	})
	require.NoError(t, err)
	require.True(t, productResult.Successful)

	service := services.NewCartService(&memoryCartStore{}, products)
	return NewCartHandler(renderer.New(), service), productResult.ID
}

func addPost(handler *CartHandler, productID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/cart/add/"+productID, nil)
	r = mux.SetURLVars(r, map[string]string{"id": productID})
	handler.AddPost(w, r)
	return w
}

func TestCartAddPostRedirectFlash(t *testing.T) {
	handler, productID := newCartHandler(t)

	w := addPost(handler, "9999")
	require.Equal(t, http.StatusSeeOther, w.Code)
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/products", location.Path)
	assert.Equal(t, "error", location.Query().Get("status"))
	assert.Equal(t, "Product not found!", location.Query().Get("message"))

	w = addPost(handler, strconv.FormatUint(uint64(productID), 10))
	require.Equal(t, http.StatusSeeOther, w.Code)
	location, err = url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/cart", location.Path)
	assert.Equal(t, "success", location.Query().Get("status"))
}
