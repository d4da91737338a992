package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newClock() *stepClock {
	return &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func seedTicket(t *testing.T, repo TicketRepository, title, by string) *domain.Ticket {
	t.Helper()
	ticket := domain.NewTicketFromDraft(domain.Draft{Title: title, Description: "d", Category: "Outros", SubmittedBy: by})
	require.NoError(t, repo.Create(context.Background(), ticket))
	return ticket
}

func TestMemoryTicketRepositoryCreateAndList(t *testing.T) {
	repo := NewMemoryTicketRepository(newClock().Now)

	first := seedTicket(t, repo, "first", "a@x.com")
	second := seedTicket(t, repo, "second", "b@x.com")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
}

func TestMemoryTicketRepositoryMutationsAdvanceUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository(newClock().Now)
	ticket := seedTicket(t, repo, "vpn", "a@x.com")

	require.NoError(t, repo.SetStatus(ctx, ticket.ID, domain.TicketStatusResolved))
	afterStatus, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, afterStatus.Status)
	assert.True(t, afterStatus.UpdatedAt.After(ticket.UpdatedAt))

	comment := &domain.Comment{TicketID: ticket.ID, Author: "a@x.com", Content: "thanks"}
	require.NoError(t, repo.AppendComment(ctx, comment))
	assert.NotEmpty(t, comment.ID)
	afterComment, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	require.Len(t, afterComment.Comments, 1)
	assert.True(t, afterComment.UpdatedAt.After(afterStatus.UpdatedAt))

	require.NoError(t, repo.SetAssignee(ctx, ticket.ID, "jane.smith@company.com"))
	afterAssign, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	require.NotNil(t, afterAssign.AssignedTo)
	assert.Equal(t, "jane.smith@company.com", *afterAssign.AssignedTo)
	assert.True(t, afterAssign.UpdatedAt.After(afterComment.UpdatedAt))
}

func TestMemoryTicketRepositoryAssignOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository(nil)
	ticket := seedTicket(t, repo, "laptop", "a@x.com")

	require.NoError(t, repo.SetAssignee(ctx, ticket.ID, "john.doe@company.com"))
	assert.ErrorIs(t, repo.SetAssignee(ctx, ticket.ID, "mike.wilson@company.com"), ErrAlreadyAssigned)

	got, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@company.com", *got.AssignedTo)
}

func TestMemoryTicketRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository(nil)

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", domain.TicketStatusClosed), ErrNotFound)
	assert.ErrorIs(t, repo.SetAssignee(ctx, "missing", "x"), ErrNotFound)
	assert.ErrorIs(t, repo.AppendComment(ctx, &domain.Comment{TicketID: "missing"}), ErrNotFound)
}

func TestMemoryTicketRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository(nil)
	ticket := seedTicket(t, repo, "copy", "a@x.com")
	require.NoError(t, repo.AppendComment(ctx, &domain.Comment{TicketID: ticket.ID, Content: "one"}))

	got, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	got.Title = "changed"
	got.Comments[0].Content = "changed"

	again, err := repo.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "copy", again.Title)
	assert.Equal(t, "one", again.Comments[0].Content)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(nil)

	user := &domain.User{Name: "Ana", Email: "ana@x.com", Role: domain.RoleClient}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	dup := &domain.User{Name: "Ana 2", Email: "ANA@x.com", Role: domain.RoleClient}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicateEmail)

	byEmail, err := repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", byID.Name)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
