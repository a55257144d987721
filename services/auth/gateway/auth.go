// Package gateway is the HTTP client for the auth endpoints
package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
)

// Client calls the auth resource of the donation API
type Client struct {
	http *httpclient.TokenClient
}

// NewClient creates a new auth API client
func NewClient(http *httpclient.TokenClient) *Client {
	return &Client{http: http}
}

// Register creates a new donor account
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.http.PostJSON(ctx, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &resp, nil
}

// Login exchanges credentials for a session token and user profile
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.http.PostJSON(ctx, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &resp, nil
}

// Profile fetches the signed-in user's profile
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.http.GetJSON(ctx, "/auth/profile", &user); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// ForgotPassword asks the server to send a reset OTP to the email
func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := c.http.PostJSON(ctx, "/auth/forgot-password", req, nil); err != nil {
		return fmt.Errorf("failed to request password reset: %w", err)
	}
	return nil
}

// ResetPassword sets a new password using the emailed OTP
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := c.http.PostJSON(ctx, "/auth/reset-password", req, nil); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
