package views

import "github.com/spec-kit/helpdesk-service/internal/domain"

// Composer describes the comment box offered under the thread.
type Composer struct {
	AllowInternal   bool
	InternalDefault bool
}

// EscalationPanel is shown to clients in place of staff controls.
type EscalationPanel struct {
	Contact string
}

// DetailView is a single ticket as seen by one actor.
type DetailView struct {
	Ticket     domain.Ticket
	Comments   []domain.Comment
	Composer   Composer
	Controls   *Controls
	Escalation *EscalationPanel
}

// BuildDetail renders t for actor. ok is false when actor may not view t.
func BuildDetail(t *domain.Ticket, actor domain.Actor, dir Directory) (DetailView, bool) {
	if !actor.CanViewTicket(t) {
		return DetailView{}, false
	}
	view := DetailView{
		Ticket:   *t,
		Comments: domain.VisibleComments(actor, t),
		Composer: Composer{AllowInternal: actor.CanPostInternalComments()},
		Controls: ControlsFor(actor, t, dir.Staff()),
	}
	view.Ticket.Comments = view.Comments
	if view.Controls == nil {
		view.Escalation = &EscalationPanel{Contact: dir.EscalationContact()}
	}
	return view, true
}
