package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

func registration(name, email, password string, role domain.Role) *forms.AuthForm {
	f := forms.NewAuthForm()
	f.Toggle()
	f.Name, f.Email, f.Password, f.ConfirmPassword, f.Role = name, email, password, password, role
	return &f
}

func login(email, password string, role domain.Role) *forms.AuthForm {
	f := forms.NewAuthForm()
	f.Email, f.Password, f.Role = email, password, role
	return &f
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	session, err := env.auth.Authenticate(env.ctx, registration("Ana", "Ana@X.com", "secret1", domain.RoleClient))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", session.User.Email)
	assert.Equal(t, domain.RoleClient, session.Actor.Role())
	assert.NotEmpty(t, session.Token.Value)
	assert.NotEqual(t, "secret1", session.User.PasswordHash)

	session, err = env.auth.Authenticate(env.ctx, login("ana@x.com", "secret1", ""))
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", session.Actor.Identity())

	claims, err := env.auth.TokenManager().ParseToken(session.Token.Value)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.Subject)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	f := registration("Ana", "ana@x.com", "12345", domain.RoleClient)
	_, err := env.auth.Register(env.ctx, f)
	assert.ErrorIs(t, err, forms.ErrPasswordTooShort)

	f = registration("Ana", "ana@x.com", "secret1", domain.RoleClient)
	f.ConfirmPassword = "secret2"
	_, err = env.auth.Register(env.ctx, f)
	assert.ErrorIs(t, err, forms.ErrPasswordMismatch)

	_, err = env.users.GetByEmail(env.ctx, "ana@x.com")
	assert.Error(t, err, "nothing persisted on validation failure")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Register(env.ctx, registration("Ana", "ana@x.com", "secret1", domain.RoleClient))
	require.NoError(t, err)

	_, err = env.auth.Register(env.ctx, registration("Ana", "ana@x.com", "secret1", domain.RoleClient))
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestRegisterStaffRequiresRoster(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(env.ctx, registration("Eve", "eve@x.com", "secret1", domain.RoleITExecutive))
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	session, err := env.auth.Register(env.ctx, registration("Jane", "jane.smith@company.com", "secret1", domain.RoleITExecutive))
	require.NoError(t, err)
	assert.True(t, session.Actor.CanChangeStatus())
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Register(env.ctx, registration("Ana", "ana@x.com", "secret1", domain.RoleClient))
	require.NoError(t, err)

	_, err = env.auth.Login(env.ctx, login("ana@x.com", "wrong", ""))
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, err = env.auth.Login(env.ctx, login("nobody@x.com", "secret1", ""))
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))

	_, err = env.auth.Login(env.ctx, login("ana@x.com", "secret1", domain.RoleITExecutive))
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	_, err = env.auth.Login(env.ctx, login("", "secret1", ""))
	assert.ErrorIs(t, err, forms.ErrMissingFields)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	session, err := env.auth.Register(env.ctx, registration("Ana", "ana@x.com", "secret1", domain.RoleClient))
	require.NoError(t, err)

	claims, err := env.auth.TokenManager().ParseToken(session.Token.Value)
	require.NoError(t, err)
	require.NoError(t, env.auth.Logout(env.ctx, claims))

	revoked, err := env.revoked.IsRevoked(env.ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestSimulatedLatencyHonoursCancellation(t *testing.T) {
	env := newTestEnv(t)
	env.auth.latency = time.Hour

	ctx, cancel := context.WithCancel(env.ctx)
	cancel()
	_, err := env.auth.Register(ctx, registration("Ana", "ana@x.com", "secret1", domain.RoleClient))
	assert.ErrorIs(t, err, context.Canceled)
}
