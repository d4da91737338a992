package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyAssigned is returned when a ticket already has an assignee.
	ErrAlreadyAssigned = errors.New("ticket already assigned")
	// ErrDuplicateEmail is returned when an account with the email exists.
	ErrDuplicateEmail = errors.New("email already registered")
)
