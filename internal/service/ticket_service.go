package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/views"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// Directory is the category and staff lookup the ticket workflows depend on.
type Directory interface {
	views.Directory
	forms.CategoryLookup
	LookupStaff(email string) (string, bool)
}

// TicketService owns the ticket collection and every mutation on it. Capabilities
// are checked here regardless of which controls a view offered.
type TicketService struct {
	tickets   repository.TicketRepository
	directory Directory
	logger    *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Directory  Directory
	Logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:   deps.TicketRepo,
		directory: deps.Directory,
		logger:    logger,
	}
}

// Directory returns the lookup used for forms and views.
func (s *TicketService) Directory() Directory {
	return s.directory
}

// CreateTicket submits the form on behalf of actor. The ticket starts open with no comments.
func (s *TicketService) CreateTicket(ctx context.Context, actor domain.Actor, form *forms.TicketForm) (*domain.Ticket, error) {
	var created *domain.Ticket
	err := form.Submit(actor.Identity(), s.directory, func(draft domain.Draft) error {
		ticket := domain.NewTicketFromDraft(draft)
		if err := s.tickets.Create(ctx, ticket); err != nil {
			return apperrors.MapError(err)
		}
		created = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("ticket created",
		zap.String("ticket_id", created.ID),
		zap.String("submitted_by", created.SubmittedBy),
		zap.String("priority", string(created.Priority)))
	return created, nil
}

// ListTickets returns the tickets actor may see, filtered and in insertion order.
func (s *TicketService) ListTickets(ctx context.Context, actor domain.Actor, filter views.ListFilter) (views.ListView, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return views.ListView{}, apperrors.MapError(err)
	}
	return views.BuildList(tickets, actor, filter, s.directory), nil
}

// GetTicket returns the detail view. Tickets the actor may not see are reported as missing.
func (s *TicketService) GetTicket(ctx context.Context, actor domain.Actor, ticketID string) (views.DetailView, error) {
	ticket, err := s.visibleTicket(ctx, actor, ticketID)
	if err != nil {
		return views.DetailView{}, err
	}
	view, _ := views.BuildDetail(ticket, actor, s.directory)
	return view, nil
}

// AddComment appends the composer's content to the thread.
func (s *TicketService) AddComment(ctx context.Context, actor domain.Actor, ticketID string, form *forms.CommentForm) (*domain.Comment, error) {
	if _, err := s.visibleTicket(ctx, actor, ticketID); err != nil {
		return nil, err
	}
	if form.Internal && !actor.CanPostInternalComments() {
		return nil, apperrors.NewForbidden("only it-executives can post internal comments")
	}

	var added *domain.Comment
	err := form.Submit(ticketID, func(id, content string, internal bool) error {
		comment := &domain.Comment{
			TicketID:   id,
			Author:     actor.Identity(),
			Content:    content,
			IsInternal: internal,
		}
		if err := s.tickets.AppendComment(ctx, comment); err != nil {
			return mapTicketError(err, id)
		}
		added = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("comment added",
		zap.String("ticket_id", ticketID),
		zap.String("author", added.Author),
		zap.Bool("internal", added.IsInternal))
	return added, nil
}

// UpdateStatus moves the ticket to status. Any status may follow any other.
func (s *TicketService) UpdateStatus(ctx context.Context, actor domain.Actor, ticketID string, status domain.TicketStatus) (views.DetailView, error) {
	if !actor.CanChangeStatus() {
		return views.DetailView{}, apperrors.NewForbidden("only it-executives can change status")
	}
	if !status.Valid() {
		return views.DetailView{}, apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	if err := s.tickets.SetStatus(ctx, ticketID, status); err != nil {
		return views.DetailView{}, mapTicketError(err, ticketID)
	}
	s.logger.Info("ticket status changed",
		zap.String("ticket_id", ticketID),
		zap.String("status", string(status)),
		zap.String("actor", actor.Identity()))
	return s.GetTicket(ctx, actor, ticketID)
}

// AssignTicket sets the assignee once. The assignee must be on the staff roster.
func (s *TicketService) AssignTicket(ctx context.Context, actor domain.Actor, ticketID, assignee string) (views.DetailView, error) {
	if !actor.CanAssign() {
		return views.DetailView{}, apperrors.NewForbidden("only it-executives can assign tickets")
	}
	member, ok := s.directory.LookupStaff(assignee)
	if !ok {
		return views.DetailView{}, apperrors.NewValidationError("assignee is not on the staff roster", map[string]any{"assignee": assignee})
	}
	if err := s.tickets.SetAssignee(ctx, ticketID, member); err != nil {
		return views.DetailView{}, mapTicketError(err, ticketID)
	}
	s.logger.Info("ticket assigned",
		zap.String("ticket_id", ticketID),
		zap.String("assignee", member),
		zap.String("actor", actor.Identity()))
	return s.GetTicket(ctx, actor, ticketID)
}

func (s *TicketService) visibleTicket(ctx context.Context, actor domain.Actor, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapTicketError(err, ticketID)
	}
	if !actor.CanViewTicket(ticket) {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	return ticket, nil
}

func mapTicketError(err error, ticketID string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	case errors.Is(err, repository.ErrAlreadyAssigned):
		return apperrors.NewConflict("ticket already assigned", map[string]any{"ticket_id": ticketID})
	default:
		return apperrors.MapError(err)
	}
}
