package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	httpclient "github.com/saylanihub/zakatms/internal/pkg/http"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/internal/pkg/screen"
	"github.com/saylanihub/zakatms/services/auth/gateway"
	"github.com/saylanihub/zakatms/services/auth/guard"
)

// ForgotPasswordState is the observable state of the forgot-password
// screen
type ForgotPasswordState struct {
	Phase screen.Phase
	Error string
	// Email is carried to the reset screen on success
	Email string
}

// ForgotPasswordScreen requests a reset OTP for an email
type ForgotPasswordScreen struct {
	auth     *gateway.Client
	validate *validator.Validate
	state    ForgotPasswordState
}

// NewForgotPasswordScreen creates the forgot-password state machine
func NewForgotPasswordScreen(auth *gateway.Client) *ForgotPasswordScreen {
	return &ForgotPasswordScreen{auth: auth, validate: validator.New()}
}

// State returns the current screen state
func (s *ForgotPasswordScreen) State() ForgotPasswordState {
	return s.state
}

// Submit asks the server to email a reset OTP
func (s *ForgotPasswordScreen) Submit(ctx context.Context, email string) ForgotPasswordState {
	req := models.ForgotPasswordRequest{Email: email}
	if err := s.validate.Struct(req); err != nil {
		s.state = ForgotPasswordState{Phase: screen.PhaseIdle, Error: "Please enter a valid email address"}
		return s.state
	}

	s.state = ForgotPasswordState{Phase: screen.PhaseSubmitting}

	if err := s.auth.ForgotPassword(ctx, req); err != nil {
		s.state = ForgotPasswordState{Phase: screen.PhaseIdle, Error: httpclient.MessageFromError(err, "Failed to send OTP")}
		return s.state
	}

	s.state = ForgotPasswordState{Phase: screen.PhaseSuccess, Email: email}
	return s.state
}

// ResetPasswordForm is what the donor types into the reset screen
type ResetPasswordForm struct {
	Email           string
	OTP             string
	NewPassword     string
	ConfirmPassword string
}

// ResetPasswordState is the observable state of the reset-password
// screen
type ResetPasswordState struct {
	Phase      screen.Phase
	Error      string
	RedirectTo string
}

// ResetPasswordScreen sets a new password using the emailed OTP
type ResetPasswordScreen struct {
	auth     *gateway.Client
	validate *validator.Validate
	state    ResetPasswordState
}

// NewResetPasswordScreen creates the reset-password state machine
func NewResetPasswordScreen(auth *gateway.Client) *ResetPasswordScreen {
	return &ResetPasswordScreen{auth: auth, validate: validator.New()}
}

// State returns the current screen state
func (s *ResetPasswordScreen) State() ResetPasswordState {
	return s.state
}

// Submit resets the password. A reset without the email from the
// forgot-password step redirects back there.
func (s *ResetPasswordScreen) Submit(ctx context.Context, form ResetPasswordForm) ResetPasswordState {
	if form.Email == "" {
		s.state = ResetPasswordState{Phase: screen.PhaseIdle, RedirectTo: "/forgot-password"}
		return s.state
	}
	if form.NewPassword != form.ConfirmPassword {
		s.state = ResetPasswordState{Phase: screen.PhaseIdle, Error: "Passwords do not match"}
		return s.state
	}

	req := models.ResetPasswordRequest{
		Email:       form.Email,
		OTP:         form.OTP,
		NewPassword: form.NewPassword,
	}
	if err := s.validate.Struct(req); err != nil {
		s.state = ResetPasswordState{Phase: screen.PhaseIdle, Error: validationMessage(err)}
		return s.state
	}

	s.state = ResetPasswordState{Phase: screen.PhaseSubmitting}

	if err := s.auth.ResetPassword(ctx, req); err != nil {
		s.state = ResetPasswordState{Phase: screen.PhaseIdle, Error: httpclient.MessageFromError(err, "Failed to reset password")}
		return s.state
	}

	s.state = ResetPasswordState{Phase: screen.PhaseSuccess, RedirectTo: guard.RouteLogin}
	return s.state
}
