package views

import "github.com/spec-kit/helpdesk-service/internal/domain"

// Directory supplies the staff roster and escalation contact shown in views.
type Directory interface {
	Staff() []string
	EscalationContact() string
}

// Controls are the staff-only mutation affordances for one ticket.
type Controls struct {
	StatusOptions   []domain.TicketStatus
	AssigneeOptions []string
}

// CanAssign reports whether the assignee selector is offered.
func (c *Controls) CanAssign() bool {
	return c != nil && len(c.AssigneeOptions) > 0
}

// ControlsFor returns nil when actor may not mutate t. The assignee selector is
// withdrawn once the ticket has an assignee.
func ControlsFor(actor domain.Actor, t *domain.Ticket, roster []string) *Controls {
	if !actor.CanChangeStatus() && !actor.CanAssign() {
		return nil
	}
	c := &Controls{}
	if actor.CanChangeStatus() {
		c.StatusOptions = append([]domain.TicketStatus(nil), domain.TicketStatuses...)
	}
	if actor.CanAssign() && !t.IsAssigned() {
		c.AssigneeOptions = append([]string(nil), roster...)
	}
	return c
}
