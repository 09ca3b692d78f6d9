package database

import (
	"context"

	"github.com/thenoetrevino/alphaslider/internal/models"
)

// ContactReader defines read operations for contacts.
type ContactReader interface {
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	GetContact(ctx context.Context, id int) (*models.Contact, error)
	CountContacts(ctx context.Context) (int, error)
}

// ContactWriter defines write operations for contacts.
type ContactWriter interface {
	AddContact(ctx context.Context, name, detail string) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int) error
}

// ContactRepository combines all contact operations.
type ContactRepository interface {
	ContactReader
	ContactWriter
}
