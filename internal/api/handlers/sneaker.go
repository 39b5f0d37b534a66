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
	"github.com/go-playground/validator/v10"
)

type SneakerHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewSneakerHandler(inventoryService service.InventoryService) *SneakerHandler {
	return &SneakerHandler{inventoryService: inventoryService, validator: validator.New()}
}

func (h *SneakerHandler) CreateSneaker() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SneakerFormData
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sneaker, err := h.inventoryService.Add(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to add sneaker", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		// the session ended between RequireUser and the write
		if sneaker == nil {
			response.Error(w, appErrors.UnauthorizedError("Login required"))
			return
		}

		response.Success(w, http.StatusCreated, sneaker)

	}
}

func (h *SneakerHandler) GetSneaker() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sneaker, err := h.inventoryService.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sneaker)

	}
}

// for eg: GET /api/v1/sneakers?category=Running
func (h *SneakerHandler) ListSneakers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := models.Category(r.URL.Query().Get("category"))

		sneakers, err := h.inventoryService.List(r.Context(), category)
		if err != nil {
			response.Error(w, err)
			return
		}

		if sneakers == nil {
			sneakers = []models.Sneaker{}
		}

		response.Success(w, http.StatusOK, sneakers)

	}
}

func (h *SneakerHandler) UpdateSneaker() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")

		var req models.UpdateSneakerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sneaker, err := h.inventoryService.Update(r.Context(), id, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to update sneaker", slog.String("sneakerId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if sneaker == nil {
			response.Error(w, appErrors.NotFoundError("Sneaker not found"))
			return
		}

		response.Success(w, http.StatusOK, sneaker)

	}
}

func (h *SneakerHandler) DeleteSneaker() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")

		removed, err := h.inventoryService.Remove(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to remove sneaker", slog.String("sneakerId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !removed {
			response.Error(w, appErrors.NotFoundError("Sneaker not found"))
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"id": id})

	}
}

func (h *SneakerHandler) DashboardStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.inventoryService.Stats(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)

	}
}
