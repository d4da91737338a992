package views

import "github.com/spec-kit/helpdesk-service/internal/domain"

// ListItem is one row of the ticket list.
type ListItem struct {
	Ticket       domain.Ticket
	CommentCount int
	Controls     *Controls
}

// ListView is the filtered ticket list as seen by one actor.
type ListView struct {
	Filter ListFilter
	Items  []ListItem
}

// Count is the number of tickets shown.
func (v ListView) Count() int {
	return len(v.Items)
}

// BuildList filters tickets for actor and attaches per-row controls.
func BuildList(tickets []domain.Ticket, actor domain.Actor, f ListFilter, dir Directory) ListView {
	filtered := FilterTickets(tickets, actor, f)
	roster := dir.Staff()

	items := make([]ListItem, 0, len(filtered))
	for i := range filtered {
		t := &filtered[i]
		items = append(items, ListItem{
			Ticket:       *t,
			CommentCount: len(domain.VisibleComments(actor, t)),
			Controls:     ControlsFor(actor, t, roster),
		})
	}
	return ListView{Filter: f, Items: items}
}
