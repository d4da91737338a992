package forms

import (
	"strings"

	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

var ErrCommentRequired = apperrors.NewValidationError("comment content is required", nil)

// CommentForm is the composer under a ticket thread.
type CommentForm struct {
	Content  string
	Internal bool
}

// Submit sends the trimmed content to add and clears the composer on success.
func (f *CommentForm) Submit(ticketID string, add func(ticketID, content string, internal bool) error) error {
	content := strings.TrimSpace(f.Content)
	if content == "" {
		return ErrCommentRequired
	}
	if err := add(ticketID, content, f.Internal); err != nil {
		return err
	}
	f.Content = ""
	f.Internal = false
	return nil
}
