package handlers

import (
	"net/http"

	"github.com/example/wishwall/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// anonymousUser is the sentinel identity for clients that send no user.
const anonymousUser = "anon"

type LikeHandler struct {
	Service *services.LikeService
}

func NewLikeHandler(service *services.LikeService) *LikeHandler {
	return &LikeHandler{Service: service}
}

// ToggleLikeHandler likes or unlikes the wish for the given user and returns
// the new like count.
func (h *LikeHandler) ToggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	var req struct {
		User string `json:"user"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.User == "" {
		req.User = anonymousUser
	}

	likes, err := h.Service.ToggleLike(r.Context(), wishID, req.User)
	if err != nil {
		logrus.WithError(err).Error("Failed to toggle like")
		respondError(w, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// GetLikesHandler returns the like count for a wish.
func (h *LikeHandler) GetLikesHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	likes, err := h.Service.GetLikes(r.Context(), wishID)
	if err != nil {
		logrus.WithError(err).Error("Failed to count likes")
		respondError(w, http.StatusInternalServerError, "Failed to count likes")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}
