package handlers

import (
	"errors"
	"net/http"

	"github.com/example/wishwall/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type WishHandler struct {
	Service *services.WishService
}

func NewWishHandler(service *services.WishService) *WishHandler {
	return &WishHandler{Service: service}
}

// CreateWishHandler handles creation of a new wish.
func (h *WishHandler) CreateWishHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	wish, err := h.Service.CreateWish(r.Context(), req.Title, req.Description, req.ImageURL)
	if err != nil {
		logrus.WithError(err).Error("Failed to create wish")
		respondError(w, http.StatusInternalServerError, "Failed to create wish")
		return
	}

	respondJSON(w, http.StatusCreated, wish)
}

// GetWishesHandler returns the full feed.
func (h *WishHandler) GetWishesHandler(w http.ResponseWriter, r *http.Request) {
	wishes, err := h.Service.GetAllWishes(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch wishes")
		respondError(w, http.StatusInternalServerError, "Failed to fetch wishes")
		return
	}
	respondJSON(w, http.StatusOK, wishes)
}

// GetWishByIDHandler retrieves a specific wish by ID.
func (h *WishHandler) GetWishByIDHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	wish, err := h.Service.GetWishByID(r.Context(), wishID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		logrus.WithError(err).Error("Failed to fetch wish")
		respondError(w, http.StatusInternalServerError, "Failed to fetch wish")
		return
	}

	respondJSON(w, http.StatusOK, wish)
}

// FulfillWishHandler marks a wish as fulfilled, attributing the fulfiller.
func (h *WishHandler) FulfillWishHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	var req struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == "" {
		req.Name = "Anonymous"
	}

	err := h.Service.FulfillWish(r.Context(), wishID, req.Name)
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrAlreadyFulfilled):
		respondError(w, http.StatusBadRequest, "Already fulfilled")
	case err != nil:
		logrus.WithError(err).Error("Failed to fulfill wish")
		respondError(w, http.StatusInternalServerError, "Failed to fulfill wish")
	default:
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
