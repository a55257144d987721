package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/google/uuid"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// AuthorizationHeader carries the session token
	AuthorizationHeader = "Authorization"
)

// TokenProvider supplies the current session token, empty when no user
// is signed in
type TokenProvider interface {
	Token() string
}

// TokenClient is a JSON HTTP client that attaches the session token to
// every request. Calls are fire-once: no retries, no caching.
type TokenClient struct {
	client  *nethttp.Client
	baseURL string
	tokens  TokenProvider
}

// NewTokenClient creates a new HTTP client for the donation API
func NewTokenClient(baseURL string, timeout time.Duration, tokens TokenProvider) *TokenClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &TokenClient{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		tokens:  tokens,
	}
}

// BaseURL returns the configured API base URL
func (c *TokenClient) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET request and decodes the JSON response
func (c *TokenClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// PostJSON performs a POST request with a JSON body and decodes the
// JSON response
func (c *TokenClient) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// PutJSON performs a PUT request with a JSON body and decodes the JSON
// response
func (c *TokenClient) PutJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPut, endpoint, body, result)
}

// DeleteJSON performs a DELETE request and decodes the JSON response
func (c *TokenClient) DeleteJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodDelete, endpoint, nil, result)
}

func (c *TokenClient) doJSON(ctx context.Context, method, endpoint string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return nil
}

// doRequest performs the actual HTTP request with token authentication
func (c *TokenClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		logger.Error("Failed to create HTTP request",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set(AuthorizationHeader, "Bearer "+token)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("request_id", requestID),
		logger.Bool("authenticated", token != ""))

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("request_id", requestID),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("request_id", requestID),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
