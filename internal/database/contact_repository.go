package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/alphaslider/internal/models"
)

// ============================================================================
// Contact Operations
// ============================================================================

// ContactRepo implements ContactRepository on top of SQLite.
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo wraps the given database connection.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// AddContact inserts a contact and returns it with its new ID.
func (r *ContactRepo) AddContact(ctx context.Context, name, detail string) (*models.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrEmptyName
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (name, detail) VALUES (?, ?)`,
		name, strings.TrimSpace(detail),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetContact(ctx, int(id))
}

// GetContact retrieves a single contact by ID.
func (r *ContactRepo) GetContact(ctx context.Context, id int) (*models.Contact, error) {
	contact := &models.Contact{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, detail, created_at FROM contacts WHERE id = ?`, id,
	).Scan(&contact.ID, &contact.Name, &contact.Detail, &contact.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// ListContacts returns every contact ordered by name, case-insensitively.
func (r *ContactRepo) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, detail, created_at FROM contacts ORDER BY name COLLATE NOCASE, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []*models.Contact{}
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Detail, &contact.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

// CountContacts returns the number of stored contacts.
func (r *ContactRepo) CountContacts(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

// DeleteContact removes a contact by ID.
func (r *ContactRepo) DeleteContact(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrContactNotFound
	}
	return nil
}
