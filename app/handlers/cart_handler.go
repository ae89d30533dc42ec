package handlers

import (
	"net/http"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/middlewares"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render  *render.Render
	service *services.CartService
}

func NewCartHandler(r *render.Render, s *services.CartService) *CartHandler {
	return &CartHandler{render: r, service: s}
}

// Index shows the grouped cart: one row per product with entry count
// and summed price.
func (h *CartHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r)
	groups := h.service.GetCartGroupedBy(r, userID)
	h.render.HTML(w, http.StatusOK, "cart/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Cart",
		"Items": groups,
	}))
}

func (h *CartHandler) AddPost(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r)
	productID := helpers.IDParam(r)

	added, err := h.service.AddToCart(r.Context(), w, r, userID, productID)
	if err != nil {
		log.Error().Err(err).Uint("product_id", productID).Msg("failed to add product to cart")
		helpers.RedirectWithMessage(w, r, "/products", "error", "Failed to add product to cart.")
		return
	}
	if !added {
		helpers.RedirectWithMessage(w, r, "/products", "error", "Product not found!")
		return
	}
	helpers.RedirectWithMessage(w, r, "/cart", "success", "Product added to cart.")
}

func (h *CartHandler) RemovePost(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r)
	productID := helpers.IDParam(r)

	if err := h.service.RemoveFromCart(w, r, userID, productID); err != nil {
		log.Error().Err(err).Uint("product_id", productID).Msg("failed to remove product from cart")
		helpers.RedirectWithMessage(w, r, "/cart", "error", "Failed to remove product from cart.")
		return
	}
	helpers.RedirectWithMessage(w, r, "/cart", "success", "Product removed from cart.")
}

func (h *CartHandler) ClearPost(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.CurrentUserID(r)

	if err := h.service.ClearCart(w, r, userID); err != nil {
		log.Error().Err(err).Msg("failed to clear cart")
		helpers.RedirectWithMessage(w, r, "/cart", "error", "Failed to clear cart.")
		return
	}
	helpers.RedirectWithMessage(w, r, "/cart", "success", "Cart cleared.")
}
