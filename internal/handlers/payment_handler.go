package handlers

import (
	"net/http"

	"github.com/example/wishwall/internal/services"
	"github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// CreateOrderHandler opens a payment order with the provider and passes the
// order object back to the client. Amount is in paisa.
func (h *PaymentHandler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Amount == 0 {
		req.Amount = 100
	}

	order, err := h.Service.CreateOrder(r.Context(), req.Amount)
	if err != nil {
		logrus.WithError(err).Error("Failed to create payment order")
		respondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusOK, order)
}
