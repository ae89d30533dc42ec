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

type RoleHandler struct {
	render   *render.Render
	validate *validator.Validate
	service  *services.RoleService
}

func NewRoleHandler(r *render.Render, v *validator.Validate, s *services.RoleService) *RoleHandler {
	return &RoleHandler{render: r, validate: v, service: s}
}

func (h *RoleHandler) Index(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list roles")
		http.Error(w, "Failed to load roles.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "roles/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Roles",
		"Roles": roles,
	}))
}

func (h *RoleHandler) Details(w http.ResponseWriter, r *http.Request) {
	role, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load role")
		http.Error(w, "Failed to load role.", http.StatusInternalServerError)
		return
	}
	if role == nil {
		helpers.RedirectWithMessage(w, r, "/roles", "error", "Role not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "roles/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title": role.Name,
		"Role":  role,
	}))
}

func (h *RoleHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/roles/create", &dto.RoleRequest{}, nil)
}

func (h *RoleHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/roles/create", "error", "Form could not be parsed.")
		return
	}
	request := dto.RoleRequest{
		Name: strings.TrimSpace(r.PostFormValue("name")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/roles/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create role")
		helpers.RedirectWithMessage(w, r, "/roles/create", "error", "Failed to create role.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/roles/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/roles/details/%d", result.ID), "success", result.Message)
}

func (h *RoleHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load role")
		http.Error(w, "Failed to load role.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/roles", "error", "Role not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/roles/edit/%d", id), request, nil)
}

func (h *RoleHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/roles/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := dto.RoleRequest{
		ID:   id,
		Name: strings.TrimSpace(r.PostFormValue("name")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update role")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update role.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/roles/details/%d", result.ID), "success", result.Message)
}

func (h *RoleHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	role, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load role")
		http.Error(w, "Failed to load role.", http.StatusInternalServerError)
		return
	}
	if role == nil {
		helpers.RedirectWithMessage(w, r, "/roles", "error", "Role not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "roles/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Delete Role",
		"Role":  role,
	}))
}

func (h *RoleHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete role")
		helpers.RedirectWithMessage(w, r, "/roles", "error", "Failed to delete role.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/roles", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/roles", "success", result.Message)
}

func (h *RoleHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.RoleRequest, errors map[string]string) {
	title := "New Role"
	if form.ID != 0 {
		title = "Edit Role"
	}
	h.render.HTML(w, http.StatusOK, "roles/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
	}))
}
