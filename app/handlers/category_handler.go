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

type CategoryHandler struct {
	render   *render.Render
	validate *validator.Validate
	service  *services.CategoryService
}

func NewCategoryHandler(r *render.Render, v *validator.Validate, s *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{render: r, validate: v, service: s}
}

func (h *CategoryHandler) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		http.Error(w, "Failed to load categories.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "categories/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Categories",
		"Categories": categories,
	}))
}

func (h *CategoryHandler) Details(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load category")
		http.Error(w, "Failed to load category.", http.StatusInternalServerError)
		return
	}
	if category == nil {
		helpers.RedirectWithMessage(w, r, "/categories", "error", "Category not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "categories/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title":    category.Title,
		"Category": category,
	}))
}

func (h *CategoryHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/categories/create", &dto.CategoryRequest{}, nil)
}

func (h *CategoryHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/categories/create", "error", "Form could not be parsed.")
		return
	}
	request := dto.CategoryRequest{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/categories/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create category")
		helpers.RedirectWithMessage(w, r, "/categories/create", "error", "Failed to create category.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/categories/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/categories/details/%d", result.ID), "success", result.Message)
}

func (h *CategoryHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load category")
		http.Error(w, "Failed to load category.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/categories", "error", "Category not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/categories/edit/%d", id), request, nil)
}

func (h *CategoryHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/categories/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := dto.CategoryRequest{
		ID:          id,
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update category")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update category.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/categories/details/%d", result.ID), "success", result.Message)
}

func (h *CategoryHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load category")
		http.Error(w, "Failed to load category.", http.StatusInternalServerError)
		return
	}
	if category == nil {
		helpers.RedirectWithMessage(w, r, "/categories", "error", "Category not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "categories/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Delete Category",
		"Category": category,
	}))
}

func (h *CategoryHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete category")
		helpers.RedirectWithMessage(w, r, "/categories", "error", "Failed to delete category.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/categories", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/categories", "success", result.Message)
}

func (h *CategoryHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.CategoryRequest, errors map[string]string) {
	title := "New Category"
	if form.ID != 0 {
		title = "Edit Category"
	}
	h.render.HTML(w, http.StatusOK, "categories/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
	}))
}
