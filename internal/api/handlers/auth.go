package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/sneaker-inventory/internal/errors"
	models "github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
	service "github.com/aaravmahajanofficial/sneaker-inventory/internal/services"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/utils"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/utils/response"
)

type AuthHandler struct {
	identityService service.IdentityService
}

func NewAuthHandler(identityService service.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

// Auth bodies are only decoded here; the identity store owns the field
// checks so clients see its messages.
func (h *AuthHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignupRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		state, err := h.identityService.Signup(r.Context(), &req)
		if err != nil {
			logger.Warn("Signup failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, state)

	}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		state, err := h.identityService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)

	}
}

func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if err := h.identityService.Logout(r.Context()); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Logout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.identityService.State())

	}
}

func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.identityService.State())
	}
}
