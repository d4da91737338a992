package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// MemoryTicketRepository keeps tickets in process, in insertion order.
type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []*domain.Ticket
	byID    map[string]*domain.Ticket
	now     func() time.Time
}

// NewMemoryTicketRepository builds an empty store. A nil clock uses time.Now.
func NewMemoryTicketRepository(now func() time.Time) *MemoryTicketRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryTicketRepository{byID: make(map[string]*domain.Ticket), now: now}
}

func (r *MemoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.now()
	ticket.ID = uuid.NewString()
	ticket.CreatedAt = ts
	ticket.UpdatedAt = ts
	if ticket.Comments == nil {
		ticket.Comments = []domain.Comment{}
	}
	stored := cloneTicket(ticket)
	r.tickets = append(r.tickets, stored)
	r.byID[stored.ID] = stored
	return nil
}

func (r *MemoryTicketRepository) List(_ context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		result = append(result, *cloneTicket(t))
	}
	return result, nil
}

func (r *MemoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTicket(t), nil
}

func (r *MemoryTicketRepository) AppendComment(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[comment.TicketID]
	if !ok {
		return ErrNotFound
	}
	ts := r.now()
	comment.ID = uuid.NewString()
	comment.Timestamp = ts
	t.Comments = append(t.Comments, *comment)
	t.UpdatedAt = ts
	return nil
}

func (r *MemoryTicketRepository) SetStatus(_ context.Context, id string, status domain.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	t.Status = status
	t.UpdatedAt = r.now()
	return nil
}

func (r *MemoryTicketRepository) SetAssignee(_ context.Context, id, assignee string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if t.IsAssigned() {
		return ErrAlreadyAssigned
	}
	t.AssignedTo = &assignee
	t.UpdatedAt = r.now()
	return nil
}

func cloneTicket(t *domain.Ticket) *domain.Ticket {
	c := *t
	if t.AssignedTo != nil {
		assignee := *t.AssignedTo
		c.AssignedTo = &assignee
	}
	c.Comments = append(make([]domain.Comment, 0, len(t.Comments)), t.Comments...)
	return &c
}

// MemoryUserRepository keeps accounts in process.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
	now     func() time.Time
}

// NewMemoryUserRepository builds an empty store. A nil clock uses time.Now.
func NewMemoryUserRepository(now func() time.Time) *MemoryUserRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryUserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
		now:     now,
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrDuplicateEmail
	}
	ts := r.now()
	user.ID = uuid.NewString()
	user.CreatedAt = ts
	user.UpdatedAt = ts
	r.byID[user.ID] = *user
	r.byEmail[key] = user.ID
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}
