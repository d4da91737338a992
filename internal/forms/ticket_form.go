package forms

import (
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

var (
	ErrTitleRequired       = apperrors.NewValidationError("title is required", nil)
	ErrDescriptionRequired = apperrors.NewValidationError("description is required", nil)
	ErrCategoryRequired    = apperrors.NewValidationError("category is required", nil)
	ErrUnknownCategory     = apperrors.NewValidationError("category is not recognised", nil)
	ErrUnknownPriority     = apperrors.NewValidationError("priority must be low, medium, high or urgent", nil)
)

// CategoryLookup reports whether a category label is selectable.
type CategoryLookup interface {
	HasCategory(category string) bool
}

// TicketForm holds the fields of a new ticket.
type TicketForm struct {
	Title       string
	Description string
	Category    string
	Priority    domain.TicketPriority
}

// NewTicketForm returns an empty form with the default priority.
func NewTicketForm() TicketForm {
	return TicketForm{Priority: domain.DefaultPriority}
}

// Draft validates the form and builds the draft for submittedBy.
func (f *TicketForm) Draft(submittedBy string, categories CategoryLookup) (domain.Draft, error) {
	title := strings.TrimSpace(f.Title)
	description := strings.TrimSpace(f.Description)
	switch {
	case title == "":
		return domain.Draft{}, ErrTitleRequired
	case description == "":
		return domain.Draft{}, ErrDescriptionRequired
	case f.Category == "":
		return domain.Draft{}, ErrCategoryRequired
	}
	if categories != nil && !categories.HasCategory(f.Category) {
		return domain.Draft{}, ErrUnknownCategory
	}
	priority := f.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}
	if !priority.Valid() {
		return domain.Draft{}, ErrUnknownPriority
	}
	return domain.Draft{
		Title:       title,
		Description: description,
		Priority:    priority,
		Category:    f.Category,
		SubmittedBy: submittedBy,
	}, nil
}

// Submit hands a valid draft to create and resets the form once create succeeds.
func (f *TicketForm) Submit(submittedBy string, categories CategoryLookup, create func(domain.Draft) error) error {
	draft, err := f.Draft(submittedBy, categories)
	if err != nil {
		return err
	}
	if err := create(draft); err != nil {
		return err
	}
	f.Reset()
	return nil
}

// Reset clears every field and restores the default priority.
func (f *TicketForm) Reset() {
	*f = NewTicketForm()
}
