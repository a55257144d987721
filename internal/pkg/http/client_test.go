package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestTokenClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"c1","title":"Flood Relief"}`))
	}))
	defer server.Close()

	client := NewTokenClient(server.URL, 0, staticToken("tok-123"))

	var result struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	err := client.GetJSON(context.Background(), "/campaigns/c1", &result)
	require.NoError(t, err)
	assert.Equal(t, "Flood Relief", result.Title)
}

func TestTokenClient_AnonymousRequestOmitsAuthorization(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewTokenClient(server.URL, 0, staticToken(""))
	err := client.GetJSON(context.Background(), "/campaigns", nil)
	require.NoError(t, err)
}

func TestTokenClient_ServerErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{
			name:        "server message surfaced verbatim",
			statusCode:  nethttp.StatusBadRequest,
			body:        `{"message":"Email already registered"}`,
			wantMessage: "Email already registered",
		},
		{
			name:        "generic fallback for empty body",
			statusCode:  nethttp.StatusInternalServerError,
			body:        ``,
			wantMessage: GenericFailureMessage,
		},
		{
			name:        "generic fallback for non-JSON body",
			statusCode:  nethttp.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: GenericFailureMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewTokenClient(server.URL, 0, nil)
			err := client.PostJSON(context.Background(), "/donations", map[string]int{"amount": 100}, nil)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestMessageFromError(t *testing.T) {
	apiErr := &APIError{StatusCode: 400, Message: "Invalid amount"}
	assert.Equal(t, "Invalid amount", MessageFromError(apiErr, "Donation failed"))
	assert.Equal(t, "Donation failed", MessageFromError(assert.AnError, "Donation failed"))
	assert.Equal(t, "", MessageFromError(nil, "whatever"))
}
