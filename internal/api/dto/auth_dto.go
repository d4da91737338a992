package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirm_password"`
	Role            domain.Role `json:"role"`
}

// Form converts the payload into a register-mode auth form.
func (r RegisterRequest) Form() forms.AuthForm {
	return forms.AuthForm{
		Mode:            forms.AuthModeRegister,
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		Role:            r.Role,
	}
}

// LoginRequest payload for sign-in. Role is optional.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Form converts the payload into a login-mode auth form.
func (r LoginRequest) Form() forms.AuthForm {
	return forms.AuthForm{
		Mode:     forms.AuthModeLogin,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse is returned by login and register.
type SessionResponse struct {
	User UserResponse `json:"user"`
	Auth AuthResponse `json:"auth"`
}

// NewUserResponse maps a user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
