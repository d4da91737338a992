package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/forms"
	"github.com/spec-kit/helpdesk-service/internal/views"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
}

// Form converts the payload into a ticket form. An omitted priority means medium.
func (r CreateTicketRequest) Form() forms.TicketForm {
	f := forms.NewTicketForm()
	f.Title = r.Title
	f.Description = r.Description
	f.Category = r.Category
	if r.Priority != "" {
		f.Priority = r.Priority
	}
	return f
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Content    string `json:"content"`
	IsInternal bool   `json:"is_internal"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// AssignTicketRequest payload.
type AssignTicketRequest struct {
	Assignee string `json:"assignee"`
}

// TicketSummary response.
type TicketSummary struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     string                `json:"category"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	SubmittedBy  string                `json:"submitted_by"`
	AssignedTo   *string               `json:"assigned_to"`
	CommentCount int                   `json:"comment_count"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CommentResponse represents one thread entry.
type CommentResponse struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticket_id"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	Timestamp  time.Time `json:"timestamp"`
}

// ControlsResponse lists the staff mutations offered for a ticket.
type ControlsResponse struct {
	StatusOptions   []domain.TicketStatus `json:"status_options"`
	AssigneeOptions []string              `json:"assignee_options"`
	CanAssign       bool                  `json:"can_assign"`
}

// ListItemResponse is one row of the list.
type ListItemResponse struct {
	TicketSummary
	Controls *ControlsResponse `json:"controls,omitempty"`
}

// TicketListResponse is the filtered list.
type TicketListResponse struct {
	Filters ListFilterResponse `json:"filters"`
	Count   int                `json:"count"`
	Items   []ListItemResponse `json:"items"`
}

// ListFilterResponse echoes the normalized filter.
type ListFilterResponse struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// ComposerResponse describes the comment box.
type ComposerResponse struct {
	AllowInternal   bool `json:"allow_internal"`
	InternalDefault bool `json:"internal_default"`
}

// EscalationResponse is the client contact panel.
type EscalationResponse struct {
	Contact string `json:"contact"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	TicketSummary
	Comments   []CommentResponse   `json:"comments"`
	Composer   ComposerResponse    `json:"composer"`
	Controls   *ControlsResponse   `json:"controls,omitempty"`
	Escalation *EscalationResponse `json:"escalation,omitempty"`
}

// DirectoryResponse lists the values used to populate forms.
type DirectoryResponse struct {
	Categories        []string                `json:"categories"`
	Priorities        []domain.TicketPriority `json:"priorities"`
	Statuses          []domain.TicketStatus   `json:"statuses"`
	Staff             []string                `json:"staff,omitempty"`
	EscalationContact string                  `json:"escalation_contact"`
}

// NewTicketSummary maps a ticket. commentCount is the number the caller may see.
func NewTicketSummary(t *domain.Ticket, commentCount int) TicketSummary {
	return TicketSummary{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Category:     t.Category,
		Status:       t.Status,
		Priority:     t.Priority,
		SubmittedBy:  t.SubmittedBy,
		AssignedTo:   t.AssignedTo,
		CommentCount: commentCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// NewCommentResponse maps a comment.
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		TicketID:   c.TicketID,
		Author:     c.Author,
		Content:    c.Content,
		IsInternal: c.IsInternal,
		Timestamp:  c.Timestamp,
	}
}

func newControlsResponse(c *views.Controls) *ControlsResponse {
	if c == nil {
		return nil
	}
	return &ControlsResponse{
		StatusOptions:   c.StatusOptions,
		AssigneeOptions: c.AssigneeOptions,
		CanAssign:       c.CanAssign(),
	}
}

// NewTicketListResponse maps a list view.
func NewTicketListResponse(v views.ListView) TicketListResponse {
	items := make([]ListItemResponse, 0, len(v.Items))
	for i := range v.Items {
		item := &v.Items[i]
		items = append(items, ListItemResponse{
			TicketSummary: NewTicketSummary(&item.Ticket, item.CommentCount),
			Controls:      newControlsResponse(item.Controls),
		})
	}
	return TicketListResponse{
		Filters: ListFilterResponse{
			Search:   v.Filter.Search,
			Status:   v.Filter.Status,
			Priority: v.Filter.Priority,
		},
		Count: v.Count(),
		Items: items,
	}
}

// NewTicketDetailResponse maps a detail view.
func NewTicketDetailResponse(v views.DetailView) TicketDetailResponse {
	comments := make([]CommentResponse, 0, len(v.Comments))
	for i := range v.Comments {
		comments = append(comments, NewCommentResponse(&v.Comments[i]))
	}
	resp := TicketDetailResponse{
		TicketSummary: NewTicketSummary(&v.Ticket, len(v.Comments)),
		Comments:      comments,
		Composer: ComposerResponse{
			AllowInternal:   v.Composer.AllowInternal,
			InternalDefault: v.Composer.InternalDefault,
		},
		Controls: newControlsResponse(v.Controls),
	}
	if v.Escalation != nil {
		resp.Escalation = &EscalationResponse{Contact: v.Escalation.Contact}
	}
	return resp
}
