package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
	"github.com/spec-kit/helpdesk-service/internal/views"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

var (
	clientA = domain.Client{Email: "a@x.com"}
	clientB = domain.Client{Email: "b@x.com"}
	staff   = domain.Staff{Email: "john.doe@company.com"}
)

func allFilter(t *testing.T, search string) views.ListFilter {
	t.Helper()
	f, err := views.NewListFilter(search, "", "")
	require.NoError(t, err)
	return f
}

func TestCreateTicketForcesOpenAndEmptyThread(t *testing.T) {
	env := newTestEnv(t)
	form := forms.TicketForm{Title: " Mouse ", Description: " broken ", Category: "Hardware", Priority: domain.TicketPriorityHigh}

	ticket, err := env.tickets.CreateTicket(env.ctx, clientA, &form)
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, "Mouse", ticket.Title)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Empty(t, ticket.Comments)
	assert.Equal(t, "a@x.com", ticket.SubmittedBy)
	assert.Nil(t, ticket.AssignedTo)
	assert.Equal(t, forms.NewTicketForm(), form)
}

func TestCreateTicketRejectsInvalidForm(t *testing.T) {
	env := newTestEnv(t)
	form := forms.TicketForm{Title: "   ", Description: "x", Category: "Hardware"}

	_, err := env.tickets.CreateTicket(env.ctx, clientA, &form)
	assert.ErrorIs(t, err, forms.ErrTitleRequired)

	list, err := env.repo.List(env.ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestScenarioClientTicketVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.submit(t, clientA, "Outlook crashes on start")

	staffView, err := env.tickets.ListTickets(env.ctx, staff, allFilter(t, "outlook"))
	require.NoError(t, err)
	assert.Equal(t, 1, staffView.Count())

	otherView, err := env.tickets.ListTickets(env.ctx, clientB, allFilter(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, otherView.Count())

	ownView, err := env.tickets.ListTickets(env.ctx, clientA, allFilter(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, ownView.Count())
}

func TestGetTicketHidesOtherClientsTickets(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Badge access")

	_, err := env.tickets.GetTicket(env.ctx, clientB, ticket.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	_, err = env.tickets.GetTicket(env.ctx, staff, "does-not-exist")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestScenarioInternalCommentHiddenFromClient(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Wifi")

	public := forms.CommentForm{Content: "still broken"}
	_, err := env.tickets.AddComment(env.ctx, clientA, ticket.ID, &public)
	require.NoError(t, err)

	internal := forms.CommentForm{Content: "AP on floor 2 is down", Internal: true}
	comment, err := env.tickets.AddComment(env.ctx, staff, ticket.ID, &internal)
	require.NoError(t, err)
	assert.True(t, comment.IsInternal)
	assert.Equal(t, "john.doe@company.com", comment.Author)
	assert.Equal(t, forms.CommentForm{}, internal)

	clientDetail, err := env.tickets.GetTicket(env.ctx, clientA, ticket.ID)
	require.NoError(t, err)
	assert.Len(t, clientDetail.Comments, 1)

	staffDetail, err := env.tickets.GetTicket(env.ctx, staff, ticket.ID)
	require.NoError(t, err)
	assert.Len(t, staffDetail.Comments, 2)
}

func TestAddCommentRules(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Printer")

	internal := forms.CommentForm{Content: "sneaky", Internal: true}
	_, err := env.tickets.AddComment(env.ctx, clientA, ticket.ID, &internal)
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	blank := forms.CommentForm{Content: "  "}
	_, err = env.tickets.AddComment(env.ctx, clientA, ticket.ID, &blank)
	assert.ErrorIs(t, err, forms.ErrCommentRequired)

	other := forms.CommentForm{Content: "hello"}
	_, err = env.tickets.AddComment(env.ctx, clientB, ticket.ID, &other)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	stored, err := env.repo.GetByID(env.ctx, ticket.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Comments)
}

func TestScenarioStatusUpdateInvokedOnce(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Laptop slow")

	view, err := env.tickets.UpdateStatus(env.ctx, staff, ticket.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, view.Ticket.Status)
	require.Len(t, env.repo.statusCalls, 1)
	assert.Equal(t, statusCall{id: ticket.ID, status: domain.TicketStatusResolved}, env.repo.statusCalls[0])
	assert.True(t, view.Ticket.UpdatedAt.After(ticket.UpdatedAt) || view.Ticket.UpdatedAt.Equal(ticket.UpdatedAt))
}

func TestStatusTransitionsAreUnrestricted(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Phone")

	for _, next := range []domain.TicketStatus{
		domain.TicketStatusClosed,
		domain.TicketStatusOpen,
		domain.TicketStatusResolved,
		domain.TicketStatusInProgress,
		domain.TicketStatusClosed,
	} {
		view, err := env.tickets.UpdateStatus(env.ctx, staff, ticket.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, view.Ticket.Status)
	}
}

func TestUpdateStatusRejections(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Screen")

	_, err := env.tickets.UpdateStatus(env.ctx, clientA, ticket.ID, domain.TicketStatusClosed)
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	_, err = env.tickets.UpdateStatus(env.ctx, staff, ticket.ID, "pending")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = env.tickets.UpdateStatus(env.ctx, staff, "missing", domain.TicketStatusClosed)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	assert.Len(t, env.repo.statusCalls, 1, "only the call that reached the repository is recorded")
}

func TestScenarioAssignmentWithdrawsControl(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "Account locked")

	before, err := env.tickets.GetTicket(env.ctx, staff, ticket.ID)
	require.NoError(t, err)
	assert.True(t, before.Controls.CanAssign())

	after, err := env.tickets.AssignTicket(env.ctx, staff, ticket.ID, "jane.smith@company.com")
	require.NoError(t, err)
	require.NotNil(t, after.Ticket.AssignedTo)
	assert.Equal(t, "jane.smith@company.com", *after.Ticket.AssignedTo)
	assert.False(t, after.Controls.CanAssign())

	_, err = env.tickets.AssignTicket(env.ctx, staff, ticket.ID, "mike.wilson@company.com")
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestAssignTicketRejections(t *testing.T) {
	env := newTestEnv(t)
	ticket := env.submit(t, clientA, "VPN")

	_, err := env.tickets.AssignTicket(env.ctx, clientA, ticket.ID, "jane.smith@company.com")
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	_, err = env.tickets.AssignTicket(env.ctx, staff, ticket.ID, "stranger@company.com")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = env.tickets.AssignTicket(env.ctx, staff, "missing", "jane.smith@company.com")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	env.submit(t, clientA, "first")
	env.submit(t, clientB, "second")
	env.submit(t, clientA, "third")

	view, err := env.tickets.ListTickets(env.ctx, staff, allFilter(t, ""))
	require.NoError(t, err)
	require.Equal(t, 3, view.Count())
	assert.Equal(t, "first", view.Items[0].Ticket.Title)
	assert.Equal(t, "second", view.Items[1].Ticket.Title)
	assert.Equal(t, "third", view.Items[2].Ticket.Title)
}
