package domain

import "fmt"

// Role identifies the kind of caller.
type Role string

const (
	RoleClient      Role = "client"
	RoleITExecutive Role = "it-executive"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleITExecutive
}

// Actor is an authenticated caller. Only Client and Staff implement it.
type Actor interface {
	Identity() string
	Role() Role

	CanViewTicket(t *Ticket) bool
	CanSeeComment(c Comment) bool
	CanChangeStatus() bool
	CanAssign() bool
	CanPostInternalComments() bool

	actor()
}

// Client is an end-user who only sees their own tickets and public comments.
type Client struct {
	Email string
}

func (c Client) Identity() string { return c.Email }
func (c Client) Role() Role { return RoleClient }

func (c Client) CanViewTicket(t *Ticket) bool {
	return t != nil && t.SubmittedBy == c.Email
}

func (c Client) CanSeeComment(cm Comment) bool { return !cm.IsInternal }
func (c Client) CanChangeStatus() bool { return false }
func (c Client) CanAssign() bool { return false }
func (c Client) CanPostInternalComments() bool { return false }
func (c Client) actor() {}

// Staff is an IT executive with full access.
type Staff struct {
	Email string
}

func (s Staff) Identity() string { return s.Email }
func (s Staff) Role() Role { return RoleITExecutive }
func (s Staff) CanViewTicket(t *Ticket) bool { return t != nil }
func (s Staff) CanSeeComment(Comment) bool { return true }
func (s Staff) CanChangeStatus() bool { return true }
func (s Staff) CanAssign() bool { return true }
func (s Staff) CanPostInternalComments() bool { return true }
func (s Staff) actor() {}

// NewActor maps a role string to its actor variant.
func NewActor(role Role, email string) (Actor, error) {
	switch role {
	case RoleClient:
		return Client{Email: email}, nil
	case RoleITExecutive:
		return Staff{Email: email}, nil
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}

// VisibleComments returns the comments a may read, in thread order.
func VisibleComments(a Actor, t *Ticket) []Comment {
	visible := make([]Comment, 0, len(t.Comments))
	for _, c := range t.Comments {
		if a.CanSeeComment(c) {
			visible = append(visible, c)
		}
	}
	return visible
}
