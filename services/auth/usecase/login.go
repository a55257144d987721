// Package usecase holds the auth screen state machines: each screen is
// a struct with one transition function taking it from idle through
// submission to success or failure.
package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/logger"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/internal/pkg/screen"
	"github.com/saylanihub/zakatms/services/auth/gateway"
	"github.com/saylanihub/zakatms/services/auth/guard"
	"github.com/saylanihub/zakatms/services/auth/session"
)

// LoginState is the observable state of the login screen
type LoginState struct {
	Phase      screen.Phase
	Error      string
	RedirectTo string
}

// LoginScreen drives the sign-in flow
type LoginScreen struct {
	auth     *gateway.Client
	session  *session.Store
	validate *validator.Validate
	state    LoginState
}

// NewLoginScreen creates the login screen state machine
func NewLoginScreen(auth *gateway.Client, sess *session.Store) *LoginScreen {
	return &LoginScreen{
		auth:     auth,
		session:  sess,
		validate: validator.New(),
	}
}

// State returns the current screen state
func (s *LoginScreen) State() LoginState {
	return s.state
}

// Submit signs the user in. On success the session is stored and the
// screen carries the role-dependent redirect target; on failure the
// screen returns to idle with the error surfaced.
func (s *LoginScreen) Submit(ctx context.Context, email, password string) LoginState {
	req := models.LoginRequest{Email: email, Password: password}
	if err := s.validate.Struct(req); err != nil {
		s.state = LoginState{Phase: screen.PhaseIdle, Error: "Please enter a valid email and password"}
		return s.state
	}

	s.state = LoginState{Phase: screen.PhaseSubmitting}

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		s.state = LoginState{Phase: screen.PhaseIdle, Error: httpclient.MessageFromError(err, "Login failed")}
		return s.state
	}

	user := resp.User
	if err := s.session.Login(&user, resp.Token); err != nil {
		logger.Error("Failed to persist session after login", logger.Err(err))
		s.state = LoginState{Phase: screen.PhaseIdle, Error: "Login failed"}
		return s.state
	}

	redirect := guard.RouteDashboard
	if user.IsAdmin() {
		redirect = guard.RouteAdmin
	}

	logger.Info("User signed in",
		logger.String("email", user.Email),
		logger.String("role", user.Role))

	s.state = LoginState{Phase: screen.PhaseSuccess, RedirectTo: redirect}
	return s.state
}
