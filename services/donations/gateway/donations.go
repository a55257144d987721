// Package gateway is the HTTP client for the donation endpoints
package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// Client calls the donation resource of the donation API
type Client struct {
	http *httpclient.TokenClient
}

// NewClient creates a new donation API client
func NewClient(http *httpclient.TokenClient) *Client {
	return &Client{http: http}
}

// Create records a new donation. The request must already satisfy the
// Online/stripePaymentId invariant.
func (c *Client) Create(ctx context.Context, req models.CreateDonationRequest) (*models.Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var donation models.Donation
	if err := c.http.PostJSON(ctx, "/donations", req, &donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	return &donation, nil
}

// MyDonations fetches the signed-in donor's own donations
func (c *Client) MyDonations(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	if err := c.http.GetJSON(ctx, "/donations/my-donations", &donations); err != nil {
		return nil, fmt.Errorf("failed to load donations: %w", err)
	}
	return donations, nil
}

// ListAll fetches every donation (admin only)
func (c *Client) ListAll(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	if err := c.http.GetJSON(ctx, "/donations", &donations); err != nil {
		return nil, fmt.Errorf("failed to load donations: %w", err)
	}
	return donations, nil
}

// UpdateStatus transitions a donation's verification status (admin only)
func (c *Client) UpdateStatus(ctx context.Context, id string, status models.DonationStatus) (*models.Donation, error) {
	var donation models.Donation
	req := models.UpdateDonationStatusRequest{Status: status}
	if err := c.http.PutJSON(ctx, "/donations/"+id+"/status", req, &donation); err != nil {
		return nil, fmt.Errorf("failed to update donation status: %w", err)
	}
	return &donation, nil
}

// Stats fetches the aggregate donation statistics (admin only)
func (c *Client) Stats(ctx context.Context) (*models.DonationStats, error) {
	var stats models.DonationStats
	if err := c.http.GetJSON(ctx, "/donations/stats", &stats); err != nil {
		return nil, fmt.Errorf("failed to load donation stats: %w", err)
	}
	return &stats, nil
}

// CreatePaymentIntent opens a payment intent for an Online donation
func (c *Client) CreatePaymentIntent(ctx context.Context, amount float64) (*models.PaymentIntentResponse, error) {
	var resp models.PaymentIntentResponse
	req := models.PaymentIntentRequest{Amount: amount}
	if err := c.http.PostJSON(ctx, "/donations/create-payment-intent", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &resp, nil
}
