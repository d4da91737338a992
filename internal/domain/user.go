package domain

import "time"

// User is an account able to sign in, either a client or an IT executive.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor returns the capability set for the user's role.
func (u *User) Actor() (Actor, error) {
	return NewActor(u.Role, u.Email)
}
