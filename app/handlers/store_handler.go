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

type StoreHandler struct {
	render   *render.Render
	validate *validator.Validate
	service  *services.StoreService
}

func NewStoreHandler(r *render.Render, v *validator.Validate, s *services.StoreService) *StoreHandler {
	return &StoreHandler{render: r, validate: v, service: s}
}

func (h *StoreHandler) Index(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list stores")
		http.Error(w, "Failed to load stores.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "stores/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "Stores",
		"Stores": stores,
	}))
}

func (h *StoreHandler) Details(w http.ResponseWriter, r *http.Request) {
	store, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load store")
		http.Error(w, "Failed to load store.", http.StatusInternalServerError)
		return
	}
	if store == nil {
		helpers.RedirectWithMessage(w, r, "/stores", "error", "Store not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "stores/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title": store.Name,
		"Store": store,
	}))
}

func (h *StoreHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/stores/create", &dto.StoreRequest{}, nil)
}

func (h *StoreHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/stores/create", "error", "Form could not be parsed.")
		return
	}
	request := dto.StoreRequest{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		IsVirtual: helpers.FormBool(r, "is_virtual"),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/stores/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create store")
		helpers.RedirectWithMessage(w, r, "/stores/create", "error", "Failed to create store.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/stores/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/stores/details/%d", result.ID), "success", result.Message)
}

func (h *StoreHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load store")
		http.Error(w, "Failed to load store.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/stores", "error", "Store not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/stores/edit/%d", id), request, nil)
}

func (h *StoreHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/stores/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := dto.StoreRequest{
		ID:        id,
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		IsVirtual: helpers.FormBool(r, "is_virtual"),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update store")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update store.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/stores/details/%d", result.ID), "success", result.Message)
}

func (h *StoreHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	store, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load store")
		http.Error(w, "Failed to load store.", http.StatusInternalServerError)
		return
	}
	if store == nil {
		helpers.RedirectWithMessage(w, r, "/stores", "error", "Store not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "stores/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Delete Store",
		"Store": store,
	}))
}

func (h *StoreHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete store")
		helpers.RedirectWithMessage(w, r, "/stores", "error", "Failed to delete store.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/stores", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/stores", "success", result.Message)
}

func (h *StoreHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.StoreRequest, errors map[string]string) {
	title := "New Store"
	if form.ID != 0 {
		title = "Edit Store"
	}
	h.render.HTML(w, http.StatusOK, "stores/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
	}))
}
