package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// StaffLookup resolves IT executives from the staff roster.
type StaffLookup interface {
	IsStaff(email string) bool
}

// Session is the outcome of a successful sign-in or registration.
type Session struct {
	User  *domain.User
	Actor domain.Actor
	Token auth.IssuedToken
}

// AuthService coordinates registration, login and logout.
type AuthService struct {
	users      repository.UserRepository
	staff      StaffLookup
	revoked    auth.RevocationStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
	latency    time.Duration
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	Staff       StaffLookup
	Revocations auth.RevocationStore
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		staff:      deps.Staff,
		revoked:    deps.Revocations,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		latency:    cfg.Auth.SimulatedLatency(),
		logger:     logger,
	}
}

// Authenticate runs the form in its current mode.
func (s *AuthService) Authenticate(ctx context.Context, form *forms.AuthForm) (*Session, error) {
	if form.Mode == forms.AuthModeRegister {
		return s.Register(ctx, form)
	}
	return s.Login(ctx, form)
}

// Register creates an account. The it-executive role is reserved for roster members.
func (s *AuthService) Register(ctx context.Context, form *forms.AuthForm) (*Session, error) {
	if form.Mode != forms.AuthModeRegister {
		return nil, forms.ErrUnknownAuthMode
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	email, role := form.Credentials()
	if role == domain.RoleITExecutive && (s.staff == nil || !s.staff.IsStaff(email)) {
		return nil, apperrors.NewForbidden("email is not on the IT staff roster")
	}

	hash, err := auth.HashPassword(form.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	user := &domain.User{
		Name:         form.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return s.openSession(user)
}

// Login verifies credentials. A role chosen on the form must match the stored role.
func (s *AuthService) Login(ctx context.Context, form *forms.AuthForm) (*Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if err := s.pause(ctx); err != nil {
		return nil, err
	}
	email, _ := form.Credentials()
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, form.Password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if form.Role != "" && form.Role != user.Role {
		return nil, apperrors.NewForbidden("account does not have the selected role")
	}
	return s.openSession(user)
}

// Logout revokes the presented token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.revoked == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) openSession(user *domain.User) (*Session, error) {
	actor, err := user.Actor()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	token, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &Session{User: user, Actor: actor, Token: token}, nil
}

// pause applies the configured sign-in latency.
func (s *AuthService) pause(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
