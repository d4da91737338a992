package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketStatuses lists every status in display order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketPriorities lists every priority from least to most urgent.
var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
	TicketPriorityUrgent,
}

// DefaultPriority is preselected on new tickets.
const DefaultPriority = TicketPriorityMedium

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Priority    TicketPriority
	Category    string
	Status      TicketStatus
	SubmittedBy string
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    []Comment
}

// IsAssigned reports whether an assignee has been set.
func (t *Ticket) IsAssigned() bool {
	return t.AssignedTo != nil && *t.AssignedTo != ""
}

// Comment is a single entry in a ticket thread.
type Comment struct {
	ID         string
	TicketID   string
	Author     string
	Content    string
	Timestamp  time.Time
	IsInternal bool
}

// Draft is a ticket before the repository assigns identity and timestamps.
type Draft struct {
	Title       string
	Description string
	Priority    TicketPriority
	Category    string
	SubmittedBy string
}

// NewTicketFromDraft builds an open ticket with an empty thread.
func NewTicketFromDraft(d Draft) *Ticket {
	priority := d.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	return &Ticket{
		Title:       d.Title,
		Description: d.Description,
		Priority:    priority,
		Category:    d.Category,
		Status:      TicketStatusOpen,
		SubmittedBy: d.SubmittedBy,
		Comments:    []Comment{},
	}
}
