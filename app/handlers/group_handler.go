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

type GroupHandler struct {
	render   *render.Render
	validate *validator.Validate
	service  *services.GroupService
}

func NewGroupHandler(r *render.Render, v *validator.Validate, s *services.GroupService) *GroupHandler {
	return &GroupHandler{render: r, validate: v, service: s}
}

func (h *GroupHandler) Index(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list groups")
		http.Error(w, "Failed to load groups.", http.StatusInternalServerError)
		return
	}
	h.render.HTML(w, http.StatusOK, "groups/index", helpers.GetBaseData(r, map[string]interface{}{
		"Title":  "Groups",
		"Groups": groups,
	}))
}

func (h *GroupHandler) Details(w http.ResponseWriter, r *http.Request) {
	group, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load group")
		http.Error(w, "Failed to load group.", http.StatusInternalServerError)
		return
	}
	if group == nil {
		helpers.RedirectWithMessage(w, r, "/groups", "error", "Group not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "groups/details", helpers.GetBaseData(r, map[string]interface{}{
		"Title": group.Title,
		"Group": group,
	}))
}

func (h *GroupHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "/groups/create", &dto.GroupRequest{}, nil)
}

func (h *GroupHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/groups/create", "error", "Form could not be parsed.")
		return
	}
	request := dto.GroupRequest{
		Title: strings.TrimSpace(r.PostFormValue("title")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, "/groups/create", &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Create(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create group")
		helpers.RedirectWithMessage(w, r, "/groups/create", "error", "Failed to create group.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/groups/create", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/groups/details/%d", result.ID), "success", result.Message)
}

func (h *GroupHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	request, err := h.service.Edit(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to load group")
		http.Error(w, "Failed to load group.", http.StatusInternalServerError)
		return
	}
	if request == nil {
		helpers.RedirectWithMessage(w, r, "/groups", "error", "Group not found!")
		return
	}
	h.renderForm(w, r, fmt.Sprintf("/groups/edit/%d", id), request, nil)
}

func (h *GroupHandler) EditPost(w http.ResponseWriter, r *http.Request) {
	id := helpers.IDParam(r)
	action := fmt.Sprintf("/groups/edit/%d", id)

	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, action, "error", "Form could not be parsed.")
		return
	}
	request := dto.GroupRequest{
		ID:    id,
		Title: strings.TrimSpace(r.PostFormValue("title")),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.renderForm(w, r, action, &request, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.service.Update(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to update group")
		helpers.RedirectWithMessage(w, r, action, "error", "Failed to update group.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, action, "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, fmt.Sprintf("/groups/details/%d", result.ID), "success", result.Message)
}

func (h *GroupHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	group, err := h.service.Item(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to load group")
		http.Error(w, "Failed to load group.", http.StatusInternalServerError)
		return
	}
	if group == nil {
		helpers.RedirectWithMessage(w, r, "/groups", "error", "Group not found!")
		return
	}
	h.render.HTML(w, http.StatusOK, "groups/delete", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Delete Group",
		"Group": group,
	}))
}

func (h *GroupHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Delete(r.Context(), helpers.IDParam(r))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete group")
		helpers.RedirectWithMessage(w, r, "/groups", "error", "Failed to delete group.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/groups", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/groups", "success", result.Message)
}

func (h *GroupHandler) renderForm(w http.ResponseWriter, r *http.Request, action string, form *dto.GroupRequest, errors map[string]string) {
	title := "New Group"
	if form.ID != 0 {
		title = "Edit Group"
	}
	h.render.HTML(w, http.StatusOK, "groups/form", helpers.GetBaseData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"Form":       form,
		"Errors":     errors,
	}))
}
