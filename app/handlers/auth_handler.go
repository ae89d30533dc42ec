package handlers

import (
	"net/http"
	"strings"

	"github.com/dtezcan/go-catalog/app/helpers"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render   *render.Render
	validate *validator.Validate
	service  *services.UserService
}

func NewAuthHandler(r *render.Render, v *validator.Validate, s *services.UserService) *AuthHandler {
	return &AuthHandler{render: r, validate: v, service: s}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "auth/login", helpers.GetBaseData(r, map[string]interface{}{
		"Title":     "Login",
		"ReturnURL": r.URL.Query().Get("return_url"),
	}))
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/login", "error", "Form could not be parsed.")
		return
	}
	request := dto.LoginRequest{
		UserName: strings.TrimSpace(r.PostFormValue("user_name")),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.render.HTML(w, http.StatusOK, "auth/login", helpers.GetBaseData(r, map[string]interface{}{
			"Title":     "Login",
			"Form":      &request,
			"Errors":    helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
			"ReturnURL": r.PostFormValue("return_url"),
		}))
		return
	}

	result, err := h.service.Login(r.Context(), w, r, request)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign in")
		helpers.RedirectWithMessage(w, r, "/login", "error", "Login failed.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/login", "error", result.Message)
		return
	}

	target := r.PostFormValue("return_url")
	if target == "" || !strings.HasPrefix(target, "/") {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *AuthHandler) LogoutPost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(w, r); err != nil {
		log.Error().Err(err).Msg("failed to sign out")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "auth/register", helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Register",
	}))
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithMessage(w, r, "/register", "error", "Form could not be parsed.")
		return
	}
	request := dto.RegisterRequest{
		UserName:        strings.TrimSpace(r.PostFormValue("user_name")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	if err := h.validate.Struct(&request); err != nil {
		h.render.HTML(w, http.StatusOK, "auth/register", helpers.GetBaseData(r, map[string]interface{}{
			"Title":  "Register",
			"Form":   &request,
			"Errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		}))
		return
	}

	result, err := h.service.Register(r.Context(), request)
	if err != nil {
		log.Error().Err(err).Msg("failed to register user")
		helpers.RedirectWithMessage(w, r, "/register", "error", "Registration failed.")
		return
	}
	if !result.Successful {
		helpers.RedirectWithMessage(w, r, "/register", "error", result.Message)
		return
	}
	helpers.RedirectWithMessage(w, r, "/login", "success", result.Message)
}
