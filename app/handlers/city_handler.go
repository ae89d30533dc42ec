package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

// city forms carry an optional image upload
const cityFormMaxMemory = 10 << 20

type CityHandler struct {
	render    *render.Render
	validate  *validator.Validate
	service   *services.CityService
	countries *services.CountryService
}

func NewCityHandler(r *render.Render, v *validator.Validate, s *services.CityService, c *services.CountryService) *CityHandler {
	return &CityHandler{render: r, validate: v, service: s, countries: c}
}

func (h *CityHandler) Index(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list cities")
		http.Error(w, "Failed to load cities.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "cities/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "Cities",
		"Cities": cities,
	}))
}

// ByCountry feeds the cascading city dropdown of the user form.
func (h *CityHandler) ByCountry(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListByCountry(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to list cities by country")
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load cities."})
		return
	}
	h.render.JSON(w, http.StatusOK, cities)
}

func (h *CityHandler) Details(w http.ResponseWriter, r *http.Request) {
	city, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load city")
		http.Error(w, "Failed to load city.", http.StatusInternalServerError)
		return
	}
	if city == nil {
		helpers.RedirectWithMessage(w, r, "/cities", "error", "City not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "cities/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title": city.Name,
		"City":  city,
	}))
}

func (h *CityHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/cities/create", &dto.CityRequest{}, nil)
}

func (h *CityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(cityFormMaxMemory); err != nil {
		helpers.RedirectWithMessage(w, r, "/cities/create", "error", "Form could not be parsed.")
		return
	}
	request := dto.CityRequest{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		CountryID: helpers.FormUint(r, "country_id"),
		Image:     h.formImage(r),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/cities/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create city")
		helpers.RedirectWithMessage(w, r, "/cities/create", "error", "Failed to create city.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/cities/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/cities/details/%d", result.ID), "success", result.Message)
}

func (h *CityHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load city")
		http.Error(w, "Failed to load city.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/cities", "error", "City not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/cities/edit/%d", id), request, nil)
}

func (h *CityHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/cities/edit/%d", id)

	if err := r.ParseMultipartForm(cityFormMaxMemory); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := dto.CityRequest{
		ID:        id,
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		CountryID: helpers.FormUint(r, "country_id"),
		Image:     h.formImage(r),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update city")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update city.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/cities/details/%d", result.ID), "success", result.Message)
}

func (h *CityHandler) DeleteImagePost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	result, err := h.service.DeleteImage(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete city image")
		helpers.RedirectWithMessage(w, r, "/cities", "error", "Failed to delete city image.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/cities", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/cities/edit/%d", id), "success", result.Message)
}

func (h *CityHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	city, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load city")
		http.Error(w, "Failed to load city.", http.StatusInternalServerError)
		return
	}
	if city == nil {
		helpers.RedirectWithMessage(w, r, "/cities", "error", "City not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "cities/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Delete City",
		"City":  city,
	}))
}

func (h *CityHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete city")
		helpers.RedirectWithMessage(w, r, "/cities", "error", "Failed to delete city.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/cities", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/cities", "success", result.Message)
}

func (h *CityHandler) formImage(r *http.Request) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func (h *CityHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.CityRequest, errors map[string]string) {
	countries, err := h.countries.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list countries")
	}

	title := "New City"
	if form.ID != 0 {
		title = "Edit City"
	}
	h.render.HTML(w, http.StatusOK, "cities/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
		"Countries":  countries,
	}))
}
