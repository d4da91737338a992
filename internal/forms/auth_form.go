package forms

import (
	"strings"
	"unicode/utf8"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

var (
	ErrMissingFields    = apperrors.NewValidationError("all fields are required", nil)
	ErrPasswordMismatch = apperrors.NewValidationError("passwords do not match", nil)
	ErrPasswordTooShort = apperrors.NewValidationError("password must be at least 6 characters", nil)
	ErrUnknownRole      = apperrors.NewValidationError("role must be client or it-executive", nil)
	ErrUnknownAuthMode  = apperrors.NewValidationError("mode must be login or register", nil)
)

// AuthMode selects between signing in and creating an account.
type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// AuthForm holds the sign-in / registration fields.
type AuthForm struct {
	Mode            AuthMode
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// NewAuthForm returns an empty login form with the client role preselected.
func NewAuthForm() AuthForm {
	return AuthForm{Mode: AuthModeLogin, Role: domain.RoleClient}
}

// Toggle switches between login and register, clearing the registration-only fields.
// Email is kept.
func (f *AuthForm) Toggle() {
	if f.Mode == AuthModeRegister {
		f.Mode = AuthModeLogin
	} else {
		f.Mode = AuthModeRegister
	}
	f.Name = ""
	f.Password = ""
	f.ConfirmPassword = ""
}

// SelectedRole returns the chosen role, defaulting to client.
func (f *AuthForm) SelectedRole() domain.Role {
	if f.Role == "" {
		return domain.RoleClient
	}
	return f.Role
}

// Validate checks the fields required by the current mode.
func (f *AuthForm) Validate() error {
	if !f.SelectedRole().Valid() {
		return ErrUnknownRole
	}
	switch f.Mode {
	case AuthModeRegister:
		if f.Name == "" || f.Email == "" || f.Password == "" || f.ConfirmPassword == "" {
			return ErrMissingFields
		}
		if f.Password != f.ConfirmPassword {
			return ErrPasswordMismatch
		}
		if utf8.RuneCountInString(f.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
	case AuthModeLogin, "":
		if f.Email == "" || f.Password == "" {
			return ErrMissingFields
		}
	default:
		return ErrUnknownAuthMode
	}
	return nil
}

// Credentials returns the normalized email and selected role.
func (f *AuthForm) Credentials() (string, domain.Role) {
	return strings.ToLower(strings.TrimSpace(f.Email)), f.SelectedRole()
}
