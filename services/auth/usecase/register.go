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

// RegisterForm is what the donor types into the sign-up screen
type RegisterForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// RegisterState is the observable state of the registration screen
type RegisterState struct {
	Phase      screen.Phase
	Error      string
	RedirectTo string
}

// RegisterScreen drives the account creation flow
type RegisterScreen struct {
	auth     *gateway.Client
	session  *session.Store
	validate *validator.Validate
	state    RegisterState
}

// NewRegisterScreen creates the registration screen state machine
func NewRegisterScreen(auth *gateway.Client, sess *session.Store) *RegisterScreen {
	return &RegisterScreen{
		auth:     auth,
		session:  sess,
		validate: validator.New(),
	}
}

// State returns the current screen state
func (s *RegisterScreen) State() RegisterState {
	return s.state
}

// Submit creates the account and signs the new donor in. Validation
// failures block before any network call.
func (s *RegisterScreen) Submit(ctx context.Context, form RegisterForm) RegisterState {
	if form.Password != form.ConfirmPassword {
		s.state = RegisterState{Phase: screen.PhaseIdle, Error: "Passwords do not match"}
		return s.state
	}

	req := models.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	}
	if err := s.validate.Struct(req); err != nil {
		s.state = RegisterState{Phase: screen.PhaseIdle, Error: validationMessage(err)}
		return s.state
	}

	s.state = RegisterState{Phase: screen.PhaseSubmitting}

	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		s.state = RegisterState{Phase: screen.PhaseIdle, Error: httpclient.MessageFromError(err, "Registration failed")}
		return s.state
	}

	user := resp.User
	if err := s.session.Login(&user, resp.Token); err != nil {
		logger.Error("Failed to persist session after registration", logger.Err(err))
		s.state = RegisterState{Phase: screen.PhaseIdle, Error: "Registration failed"}
		return s.state
	}

	logger.Info("Account created", logger.String("email", user.Email))

	s.state = RegisterState{Phase: screen.PhaseSuccess, RedirectTo: guard.RouteDashboard}
	return s.state
}

// validationMessage maps validator failures to the messages the forms
// show
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Please fill in all required fields"
	}

	first := errs[0]
	switch {
	case first.Field() == "Password" && first.Tag() == "min":
		return "Password must be at least 6 characters"
	case first.Field() == "NewPassword" && first.Tag() == "min":
		return "Password must be at least 6 characters"
	case first.Tag() == "email":
		return "Please enter a valid email address"
	default:
		return "Please fill in all required fields"
	}
}
