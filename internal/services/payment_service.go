package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/wishwall/internal/config"
	"github.com/sirupsen/logrus"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

// PaymentService creates orders against the Razorpay Orders API. The order
// object is passed through to the caller untouched; the server never
// verifies the payment outcome itself.
type PaymentService struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	logrus.WithField("mode", cfg.RazorpayMode).Info("payment provider configured")
	return &PaymentService{
		keyID:     cfg.RazorpayKeyID,
		keySecret: cfg.RazorpayKeySecret,
		baseURL:   razorpayBaseURL,
		client:    http.DefaultClient,
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates an order for the given amount in paisa and returns the
// provider's order object as-is.
func (s *PaymentService) CreateOrder(ctx context.Context, amount int64) (map[string]interface{}, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: "INR",
		Receipt:  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.keyID, s.keySecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Error("payment provider rejected order")
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var order map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return order, nil
}
