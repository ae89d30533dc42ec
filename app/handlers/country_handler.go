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

type CountryHandler struct {
	render   *render.Render
	validate *validator.Validate
	service  *services.CountryService
}

func NewCountryHandler(r *render.Render, v *validator.Validate, s *services.CountryService) *CountryHandler {
	return &CountryHandler{render: r, validate: v, service: s}
}

func (h *CountryHandler) Index(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list countries")
		http.Error(w, "Failed to load countries.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "countries/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":     "Countries",
		"Countries": countries,
	}))
}

func (h *CountryHandler) Details(w http.ResponseWriter, r *http.Request) {
	country, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load country")
		http.Error(w, "Failed to load country.", http.StatusInternalServerError)
		return
	}
	if country == nil {
		helpers.RedirectWithMessage(w, r, "/countries", "error", "Country not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "countries/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title":   country.Name,
		"Country": country,
	}))
}

func (h *CountryHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/countries/create", &dto.CountryRequest{}, nil)
}

func (h *CountryHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/countries/create", "error", "Form could not be parsed.")
		return
	}
	request := dto.CountryRequest{
		Name: strings.TrimSpace(r.PostFormValue("name")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/countries/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create country")
		helpers.RedirectWithMessage(w, r, "/countries/create", "error", "Failed to create country.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/countries/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/countries/details/%d", result.ID), "success", result.Message)
}

func (h *CountryHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load country")
		http.Error(w, "Failed to load country.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/countries", "error", "Country not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/countries/edit/%d", id), request, nil)
}

func (h *CountryHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/countries/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := dto.CountryRequest{
		ID:   id,
		Name: strings.TrimSpace(r.PostFormValue("name")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update country")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update country.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/countries/details/%d", result.ID), "success", result.Message)
}

func (h *CountryHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	country, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load country")
		http.Error(w, "Failed to load country.", http.StatusInternalServerError)
		return
	}
	if country == nil {
		helpers.RedirectWithMessage(w, r, "/countries", "error", "Country not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "countries/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title":   "Delete Country",
		"Country": country,
	}))
}

func (h *CountryHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete country")
		helpers.RedirectWithMessage(w, r, "/countries", "error", "Failed to delete country.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/countries", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/countries", "success", result.Message)
}

func (h *CountryHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.CountryRequest, errors map[string]string) {
	title := "New Country"
	if form.ID != 0 {
		title = "Edit Country"
	}
	h.render.HTML(w, http.StatusOK, "countries/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
	}))
}
