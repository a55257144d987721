package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(httpclient.NewTokenClient(server.URL, 0, nil)), server
}

func TestClient_Login(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "donor@example.com", req.Email)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-abc",
			"_id":   "u1",
			"name":  "Donor One",
			"email": "donor@example.com",
			"role":  "donor",
		})
	}))
	defer server.Close()

	resp, err := client.Login(context.Background(), models.LoginRequest{
		Email:    "donor@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.Token)
	assert.Equal(t, "Donor One", resp.Name)
	assert.Equal(t, models.RoleDonor, resp.Role)
}

func TestClient_LoginSurfacesServerMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", httpclient.MessageFromError(err, "Login failed"))
}

func TestClient_Register(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-new",
			"_id":   "u2",
			"name":  "New Donor",
			"role":  "donor",
		})
	}))
	defer server.Close()

	resp, err := client.Register(context.Background(), models.RegisterRequest{
		Name:     "New Donor",
		Email:    "new@example.com",
		Phone:    "03001234567",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-new", resp.Token)
}

func TestClient_PasswordResetFlow(t *testing.T) {
	var paths []string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	ctx := context.Background()
	require.NoError(t, client.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: "donor@example.com"}))
	require.NoError(t, client.ResetPassword(ctx, models.ResetPasswordRequest{
		Email:       "donor@example.com",
		OTP:         "123456",
		NewPassword: "fresh-secret",
	}))

	assert.Equal(t, []string{"/auth/forgot-password", "/auth/reset-password"}, paths)
}
