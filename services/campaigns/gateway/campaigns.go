// Package gateway is the HTTP client for the campaign endpoints
package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// Client calls the campaign resource of the donation API
type Client struct {
	http *httpclient.TokenClient
}

// NewClient creates a new campaign API client
func NewClient(http *httpclient.TokenClient) *Client {
	return &Client{http: http}
}

// List fetches the public campaign list
func (c *Client) List(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := c.http.GetJSON(ctx, "/campaigns", &campaigns); err != nil {
		return nil, fmt.Errorf("failed to load campaigns: %w", err)
	}
	return campaigns, nil
}

// ListAll fetches every campaign including non-public ones (admin only)
func (c *Client) ListAll(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := c.http.GetJSON(ctx, "/campaigns/all", &campaigns); err != nil {
		return nil, fmt.Errorf("failed to load campaigns: %w", err)
	}
	return campaigns, nil
}

// Get fetches a single campaign by id
func (c *Client) Get(ctx context.Context, id string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.http.GetJSON(ctx, "/campaigns/"+id, &campaign); err != nil {
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return &campaign, nil
}

// Create creates a new campaign (admin only)
func (c *Client) Create(ctx context.Context, req models.CampaignRequest) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.http.PostJSON(ctx, "/campaigns", req, &campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return &campaign, nil
}

// Update edits an existing campaign (admin only)
func (c *Client) Update(ctx context.Context, id string, req models.CampaignRequest) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.http.PutJSON(ctx, "/campaigns/"+id, req, &campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return &campaign, nil
}

// Delete removes a campaign (admin only)
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.http.DeleteJSON(ctx, "/campaigns/"+id, nil); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}
