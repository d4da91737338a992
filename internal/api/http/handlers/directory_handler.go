package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// DirectorySource supplies the values offered on the forms.
type DirectorySource interface {
	Categories() []string
	Staff() []string
	EscalationContact() string
}

// DirectoryHandler serves GET /directory.
type DirectoryHandler struct {
	directory DirectorySource
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directory DirectorySource) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Get returns categories, priorities and statuses. The staff roster is only
// listed for callers who can assign tickets.
func (h *DirectoryHandler) Get(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	resp := dto.DirectoryResponse{
		Categories:        h.directory.Categories(),
		Priorities:        domain.TicketPriorities,
		Statuses:          domain.TicketStatuses,
		EscalationContact: h.directory.EscalationContact(),
	}
	if actor.CanAssign() {
		resp.Staff = h.directory.Staff()
	}
	return c.JSON(fiber.Map{"data": resp})
}
