package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type UserHandler struct {
	render    *render.Render
	validate  *validator.Validate
	service   *services.UserService
	groups    *services.GroupService
	countries *services.CountryService
	cities    *services.CityService
	roles     *services.RoleService
}

func NewUserHandler(r *render.Render, v *validator.Validate, s *services.UserService, g *services.GroupService, c *services.CountryService, ci *services.CityService, ro *services.RoleService) *UserHandler {
	return &UserHandler{render: r, validate: v, service: s, groups: g, countries: c, cities: ci, roles: ro}
}

func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		http.Error(w, "Failed to load users.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "users/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Users",
		"Users": users,
	}))
}

func (h *UserHandler) Details(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load user")
		http.Error(w, "Failed to load user.", http.StatusInternalServerError)
		return
	}
	if user == nil {
		helpers.RedirectWithMessage(w, r, "/users", "error", "User not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "users/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title": user.UserName,
		"User":  user,
	}))
}

func (h *UserHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/users/create", &dto.UserRequest{IsActive: true}, nil)
}

func (h *UserHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/users/create", "error", "Form could not be parsed.")
		return
	}
	request := h.bindForm(r, 0)
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/users/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")
		helpers.RedirectWithMessage(w, r, "/users/create", "error", "Failed to create user.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/users/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/users/details/%d", result.ID), "success", result.Message)
}

func (h *UserHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load user")
		http.Error(w, "Failed to load user.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/users", "error", "User not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/users/edit/%d", id), request, nil)
}

func (h *UserHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/users/edit/%d", id)

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
		log.Error().Err(err).Msg("failed to update user")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update user.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/users/details/%d", result.ID), "success", result.Message)
}

func (h *UserHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load user")
		http.Error(w, "Failed to load user.", http.StatusInternalServerError)
		return
	}
	if user == nil {
		helpers.RedirectWithMessage(w, r, "/users", "error", "User not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "users/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Delete User",
		"User":  user,
	}))
}

func (h *UserHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete user")
		helpers.RedirectWithMessage(w, r, "/users", "error", "Failed to delete user.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/users", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/users", "success", result.Message)
}

func (h *UserHandler) bindForm(r *http.Request, id uint) dto.UserRequest {
	gender := models.GenderMan
	if raw, err := strconv.Atoi(r.PostFormValue("gender")); err == nil {
		gender = models.Gender(raw)
	}
	return dto.UserRequest{
		ID:        id,
		UserName:  strings.TrimSpace(r.PostFormValue("user_name")),
		Password:  r.PostFormValue("password"),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Gender:    gender,
		BirthDate: helpers.FormDate(r, "birth_date"),
		Score:     helpers.FormDecimalPtr(r, "score"),
		IsActive:  helpers.FormBool(r, "is_active"),
		Address:   strings.TrimSpace(r.PostFormValue("address")),
		GroupID:   helpers.FormUint(r, "group_id"),
		CountryID: helpers.FormUint(r, "country_id"),
		CityID:    helpers.FormUint(r, "city_id"),
		RoleIDs:   helpers.FormUintSlice(r, "role_ids"),
	}
}

func (h *UserHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.UserRequest, errors map[string]string) {
	groups, err := h.groups.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list groups")
	}
	countries, err := h.countries.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list countries")
	}
	roles, err := h.roles.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list roles")
	}

	// city options follow the picked country
	var cities []dto.CityResponse
	if form.CountryID != nil {
		cities, err = h.cities.ListByCountry(r.Context(), *form.CountryID)
		if err != nil {
			log.Error().Err(err).Msg("failed to list cities by country")
		}
	}

	title := "New User"
	if form.ID != 0 {
		title = "Edit User"
	}
	h.render.HTML(w, http.StatusOK, "users/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
		"Groups":     groups,
		"Countries":  countries,
		"Cities":     cities,
		"Roles":      roles,
	}))
}
