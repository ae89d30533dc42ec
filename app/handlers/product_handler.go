package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render     *render.Render
	validate   *validator.Validate
	service    *services.ProductService
	categories *services.CategoryService
	stores     *services.StoreService
}

func NewProductHandler(r *render.Render, v *validator.Validate, s *services.ProductService, c *services.CategoryService, st *services.StoreService) *ProductHandler {
	return &ProductHandler{render: r, validate: v, service: s, categories: c, stores: st}
}

// Index lists products narrowed by the filter form. Empty filter fields
// are not applied, so a blank form lists everything.
func (h *ProductHandler) Index(w http.ResponseWriter, r *http.Request) {
	filter := dto.ProductQueryRequest{
		Name:                strings.TrimSpace(r.URL.Query().Get("name")),
		UnitPriceStart:      helpers.QueryDecimal(r, "unit_price_start"),
		UnitPriceEnd:        helpers.QueryDecimal(r, "unit_price_end"),
		StockAmountStart:    helpers.QueryInt(r, "stock_amount_start"),
		StockAmountEnd:      helpers.QueryInt(r, "stock_amount_end"),
		ExpirationDateStart: helpers.QueryDate(r, "expiration_date_start"),
		ExpirationDateEnd:   helpers.QueryDate(r, "expiration_date_end"),
		CategoryID:          helpers.QueryUint(r, "category_id"),
		StoreIDs:            helpers.QueryUintSlice(r, "store_ids"),
	}

	products, err := h.service.ListFiltered(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		http.Error(w, "Failed to load products.", http.StatusInternalServerError)
		return
	}

	categories, err := h.categories.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
	}
	stores, err := h.stores.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list stores")
	}

	h.render.HTML(w, http.StatusOK, "products/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Products",
		"Products":   products,
		"Filter":     filter,
		"Categories": categories,
		"Stores":     stores,
	}))
}

func (h *ProductHandler) Details(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load product")
		http.Error(w, "Failed to load product.", http.StatusInternalServerError)
		return
	}
	if product == nil {
		helpers.RedirectWithMessage(w, r, "/products", "error", "Product not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "products/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title":   product.Name,
		"Product": product,
	}))
}

func (h *ProductHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/products/create", &dto.ProductRequest{}, nil)
}

func (h *ProductHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/products/create", "error", "Form could not be parsed.")
		return
	}
	request := h.bindForm(r, 0)
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/products/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create product")
		helpers.RedirectWithMessage(w, r, "/products/create", "error", "Failed to create product.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/products/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/products/details/%d", result.ID), "success", result.Message)
}

func (h *ProductHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load product")
		http.Error(w, "Failed to load product.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/products", "error", "Product not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/products/edit/%d", id), request, nil)
}

func (h *ProductHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/products/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := h.bindForm(r, id)
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update product")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update product.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/products/details/%d", result.ID), "success", result.Message)
}

func (h *ProductHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load product")
		http.Error(w, "Failed to load product.", http.StatusInternalServerError)
		return
	}
	if product == nil {
		helpers.RedirectWithMessage(w, r, "/products", "error", "Product not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "products/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title":   "Delete Product",
		"Product": product,
	}))
}

func (h *ProductHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete product")
		helpers.RedirectWithMessage(w, r, "/products", "error", "Failed to delete product.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/products", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/products", "success", result.Message)
}

func (h *ProductHandler) bindForm(r *http.Request, id uint) dto.ProductRequest {
	return dto.ProductRequest{
		ID:             id,
		Name:           strings.TrimSpace(r.PostFormValue("name")),
		UnitPrice:      helpers.FormDecimal(r, "unit_price"),
		StockAmount:    helpers.FormInt(r, "stock_amount"),
		ExpirationDate: helpers.FormDate(r, "expiration_date"),
		CategoryID:     helpers.FormUint(r, "category_id"),
		StoreIDs:       helpers.FormUintSlice(r, "store_ids"),
	}
}

func (h *ProductHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.ProductRequest, errors map[string]string) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
	}
	stores, err := h.stores.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list stores")
	}

	title := "New Product"
	if form.ID != 0 {
		title = "Edit Product"
	}
	h.render.HTML(w, http.StatusOK, "products/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
		"Categories": categories,
		"Stores":     stores,
	}))
}
