package handlers

import (
	"net/http"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render     *render.Render
	categories *services.CategoryService
	products   *services.ProductService
}

func NewHomeHandler(r *render.Render, c *services.CategoryService, p *services.ProductService) *HomeHandler {
	return &HomeHandler{render: r, categories: c, products: p}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		http.Error(w, "Failed to load categories.", http.StatusInternalServerError)
		return
	}

	products, err := h.products.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		http.Error(w, "Failed to load products.", http.StatusInternalServerError)
		return
	}

	h.render.HTML(w, http.StatusOK, "home", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Home",
		"Categories": categories,
		"Products":   products,
	}))
}
