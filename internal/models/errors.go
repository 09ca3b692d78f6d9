package models

import "errors"

// Domain-specific errors for the contact directory
var (
	// ErrEmptyName indicates a contact was submitted without a name
	ErrEmptyName = errors.New("contact name cannot be empty")

	// ErrContactNotFound indicates no contact has the requested ID
	ErrContactNotFound = errors.New("contact not found")
)
