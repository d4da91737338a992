package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/directory"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

type statusCall struct {
	id     string
	status domain.TicketStatus
}

// recordingRepo counts status mutations on top of the in-memory store.
type recordingRepo struct {
	*repository.MemoryTicketRepository
	statusCalls []statusCall
}

func (r *recordingRepo) SetStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	r.statusCalls = append(r.statusCalls, statusCall{id: id, status: status})
	return r.MemoryTicketRepository.SetStatus(ctx, id, status)
}

type testEnv struct {
	ctx     context.Context
	repo    *recordingRepo
	tickets *TicketService
	auth    *AuthService
	users   *repository.MemoryUserRepository
	revoked *auth.MemoryRevocationStore
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	repo := &recordingRepo{MemoryTicketRepository: repository.NewMemoryTicketRepository(nil)}
	dir := directory.Default()
	users := repository.NewMemoryUserRepository(nil)
	revoked := auth.NewMemoryRevocationStore(nil)

	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test", AccessTokenTTLMinutes: 5, BcryptCost: bcrypt.MinCost}}
	return testEnv{
		ctx:     context.Background(),
		repo:    repo,
		tickets: NewTicketService(TicketDependencies{TicketRepo: repo, Directory: dir}),
		auth:    NewAuthService(cfg, AuthDependencies{UserRepo: users, Staff: dir, Revocations: revoked}),
		users:   users,
		revoked: revoked,
	}
}

func (e testEnv) submit(t *testing.T, actor domain.Actor, title string) *domain.Ticket {
	t.Helper()
	form := forms.NewTicketForm()
	form.Title = title
	form.Description = "details for " + title
	form.Category = "Software"
	ticket, err := e.tickets.CreateTicket(e.ctx, actor, &form)
	require.NoError(t, err)
	return ticket
}
