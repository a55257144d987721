package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/saylanihub/zakatms/internal/pkg/screen"
	"github.com/saylanihub/zakatms/services/auth/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterScreen_SuccessSignsIn(t *testing.T) {
	auth, store := newAuthFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// The confirm-password field never leaves the client
		_, hasConfirm := body["confirmPassword"]
		assert.False(t, hasConfirm)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-new",
			"_id":   "u9",
			"name":  body["name"],
			"email": body["email"],
			"role":  "donor",
		})
	}))

	reg := NewRegisterScreen(auth, store)
	state := reg.Submit(context.Background(), RegisterForm{
		Name:            "New Donor",
		Email:           "new@example.com",
		Phone:           "03001234567",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	assert.Equal(t, screen.PhaseSuccess, state.Phase)
	assert.Equal(t, guard.RouteDashboard, state.RedirectTo)
	assert.Equal(t, "tok-new", store.Token())
}

func TestRegisterScreen_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		form      RegisterForm
		wantError string
	}{
		{
			name: "password mismatch",
			form: RegisterForm{
				Name: "X", Email: "x@y.z", Phone: "1",
				Password: "secret1", ConfirmPassword: "secret2",
			},
			wantError: "Passwords do not match",
		},
		{
			name: "short password",
			form: RegisterForm{
				Name: "X", Email: "x@y.z", Phone: "1",
				Password: "abc", ConfirmPassword: "abc",
			},
			wantError: "Password must be at least 6 characters",
		},
		{
			name: "invalid email",
			form: RegisterForm{
				Name: "X", Email: "not-an-email", Phone: "1",
				Password: "secret1", ConfirmPassword: "secret1",
			},
			wantError: "Please enter a valid email address",
		},
		{
			name: "missing name",
			form: RegisterForm{
				Email: "x@y.z", Phone: "1",
				Password: "secret1", ConfirmPassword: "secret1",
			},
			wantError: "Please fill in all required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth, store := newAuthFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			reg := NewRegisterScreen(auth, store)
			state := reg.Submit(context.Background(), tt.form)

			assert.Equal(t, screen.PhaseIdle, state.Phase)
			assert.Equal(t, tt.wantError, state.Error)
			assert.False(t, called, "validation failures must not reach the network")
		})
	}
}
