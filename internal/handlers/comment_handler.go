package handlers

import (
	"errors"
	"net/http"

	"github.com/example/wishwall/internal/services"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	Service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{Service: service}
}

// AddCommentHandler appends a comment to a wish.
func (h *CommentHandler) AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	var req struct {
		User string `json:"user"`
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.User == "" {
		req.User = anonymousUser
	}

	comment, err := h.Service.AddComment(r.Context(), wishID, req.User, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrEmptyComment) {
			respondError(w, http.StatusBadRequest, "Empty comment")
			return
		}
		logrus.WithError(err).Error("Failed to add comment")
		respondError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	respondJSON(w, http.StatusOK, comment)
}

// GetCommentsHandler lists a wish's comments, oldest first.
func (h *CommentHandler) GetCommentsHandler(w http.ResponseWriter, r *http.Request) {
	wishID := mux.Vars(r)["id"]

	comments, err := h.Service.GetComments(r.Context(), wishID)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch comments")
		respondError(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	respondJSON(w, http.StatusOK, comments)
}
