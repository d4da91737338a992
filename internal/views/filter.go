package views

import (
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// FilterAll disables the status or priority filter.
const FilterAll = "all"

// ListFilter is the search/status/priority selection of the ticket list.
type ListFilter struct {
	Search   string
	Status   string
	Priority string
}

// NewListFilter normalizes empty selections to "all" and rejects unknown values.
func NewListFilter(search, status, priority string) (ListFilter, error) {
	f := ListFilter{Search: search, Status: FilterAll, Priority: FilterAll}
	if status != "" && status != FilterAll {
		if !domain.TicketStatus(status).Valid() {
			return ListFilter{}, apperrors.NewValidationError("unknown status filter", map[string]any{"status": status})
		}
		f.Status = status
	}
	if priority != "" && priority != FilterAll {
		if !domain.TicketPriority(priority).Valid() {
			return ListFilter{}, apperrors.NewValidationError("unknown priority filter", map[string]any{"priority": priority})
		}
		f.Priority = priority
	}
	return f, nil
}

type ticketPredicate func(t *domain.Ticket) bool

// FilterTickets keeps the tickets actor may see that match f, preserving input order.
// Ownership is checked first, then search, status and priority.
func FilterTickets(tickets []domain.Ticket, actor domain.Actor, f ListFilter) []domain.Ticket {
	predicates := []ticketPredicate{
		actor.CanViewTicket,
		matchesSearch(f.Search),
		matchesStatus(f.Status),
		matchesPriority(f.Priority),
	}

	result := make([]domain.Ticket, 0, len(tickets))
	for i := range tickets {
		if keep(&tickets[i], predicates) {
			result = append(result, tickets[i])
		}
	}
	return result
}

func keep(t *domain.Ticket, predicates []ticketPredicate) bool {
	for _, p := range predicates {
		if !p(t) {
			return false
		}
	}
	return true
}

func matchesSearch(term string) ticketPredicate {
	if term == "" {
		return func(*domain.Ticket) bool { return true }
	}
	needle := strings.ToLower(term)
	return func(t *domain.Ticket) bool {
		return strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle)
	}
}

func matchesStatus(status string) ticketPredicate {
	if status == "" || status == FilterAll {
		return func(*domain.Ticket) bool { return true }
	}
	return func(t *domain.Ticket) bool { return string(t.Status) == status }
}

func matchesPriority(priority string) ticketPredicate {
	if priority == "" || priority == FilterAll {
		return func(*domain.Ticket) bool { return true }
	}
	return func(t *domain.Ticket) bool { return string(t.Priority) == priority }
}
