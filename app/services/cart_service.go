package services

import (
	"context"
	"net/http"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/utils/format"
	"github.com/dtezcan/go-catalog/app/utils/sessions"
)

// CartService keeps a session-scoped list of cart entries. Quantity is
// represented by entry count: adding the same product twice appends two
// entries, and removing takes out one entry at a time.
type CartService struct {
	cart     sessions.CartStore
	products *ProductService
}

func NewCartService(cartStore sessions.CartStore, productService *ProductService) *CartService {
	return &CartService{cart: cartStore, products: productService}
}

// GetCart returns the user's entries of the session list, empty when
// the session carries no cart.
func (s *CartService) GetCart(r *http.Request, userID uint) []models.CartItem {
	items := make([]models.CartItem, 0)
	for _, item := range s.cart.GetCart(r) {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items
}

// GetCartGroupedBy collapses the user's entries into one row per
// product, counting entries and summing the snapshotted unit prices.
func (s *CartService) GetCartGroupedBy(r *http.Request, userID uint) []models.CartItemGroup {
	groups := make([]models.CartItemGroup, 0)
	index := make(map[uint]int)

	for _, item := range s.GetCart(r, userID) {
		if i, ok := index[item.ProductID]; ok {
			groups[i].ProductCount++
			groups[i].TotalPrice = groups[i].TotalPrice.Add(item.UnitPrice)
			continue
		}
		index[item.ProductID] = len(groups)
		groups = append(groups, models.CartItemGroup{
			UserID:       item.UserID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductCount: 1,
			TotalPrice:   item.UnitPrice,
		})
	}
	for i := range groups {
		groups[i].TotalPriceF = format.Currency(groups[i].TotalPrice)
	}
	return groups
}

// AddToCart appends one entry with the product's current name and
// price. An unknown product id leaves the cart untouched and reports
// false so the caller can tell the no-op apart from a real add.
func (s *CartService) AddToCart(ctx context.Context, w http.ResponseWriter, r *http.Request, userID, productID uint) (bool, error) {
	product, err := s.products.Item(ctx, productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	items := s.cart.GetCart(r)
	items = append(items, models.CartItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.UnitPrice,
		UnitPriceF:  product.UnitPriceF,
	})
	if err := s.cart.SetCart(w, r, items); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFromCart takes out the first entry matching the product, so a
// product added three times drops to two.
func (s *CartService) RemoveFromCart(w http.ResponseWriter, r *http.Request, userID, productID uint) error {
	items := s.cart.GetCart(r)
	for i, item := range items {
		if item.UserID == userID && item.ProductID == productID {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}
	return s.cart.SetCart(w, r, items)
}

// ClearCart drops all of the user's entries.
func (s *CartService) ClearCart(w http.ResponseWriter, r *http.Request, userID uint) error {
	items := s.cart.GetCart(r)
	kept := items[:0]
	for _, item := range items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	return s.cart.SetCart(w, r, kept)
}
