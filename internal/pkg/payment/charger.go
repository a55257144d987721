// Package payment wraps the external card-payment capability: charge a
// card against a payment intent and hand back the provider's
// confirmation id, or fail before any donation record exists.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// Card carries the card details entered by the donor
type Card struct {
	Number   string
	ExpMonth string
	ExpYear  string
	CVC      string
}

// CardCharger captures a card payment for an open payment intent and
// returns the provider's confirmation id
type CardCharger interface {
	Charge(ctx context.Context, clientSecret string, card Card) (string, error)
}

// StripeCharger confirms payment intents against the provider's REST
// endpoint using the publishable key
type StripeCharger struct {
	client    *http.Client
	baseURL   string
	publicKey string
}

// NewStripeCharger creates a charger from payment config
func NewStripeCharger(cfg models.PaymentConfig) *StripeCharger {
	return &StripeCharger{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   strings.TrimSuffix(cfg.ConfirmURL, "/"),
		publicKey: cfg.PublicKey,
	}
}

// Charge confirms the intent identified by the client secret. The
// intent id is the client secret's prefix before "_secret".
func (s *StripeCharger) Charge(ctx context.Context, clientSecret string, card Card) (string, error) {
	if s.publicKey == "" {
		return "", fmt.Errorf("payment provider is not configured")
	}

	intentID, _, found := strings.Cut(clientSecret, "_secret")
	if !found || intentID == "" {
		return "", fmt.Errorf("malformed payment intent client secret")
	}

	form := url.Values{}
	form.Set("key", s.publicKey)
	form.Set("client_secret", clientSecret)
	form.Set("payment_method_data[type]", "card")
	form.Set("payment_method_data[card][number]", card.Number)
	form.Set("payment_method_data[card][exp_month]", card.ExpMonth)
	form.Set("payment_method_data[card][exp_year]", card.ExpYear)
	form.Set("payment_method_data[card][cvc]", card.CVC)

	endpoint := fmt.Sprintf("%s/%s/confirm", s.baseURL, intentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("Card capture request failed", logger.Err(err))
		return "", fmt.Errorf("payment capture failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Error  *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode capture response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("payment capture declined: %s", result.Error.Message)
	}
	if result.Status != "succeeded" || result.ID == "" {
		return "", fmt.Errorf("payment capture did not succeed (status %q)", result.Status)
	}

	logger.Debug("Card capture succeeded", logger.String("payment_id", result.ID))
	return result.ID, nil
}
