package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	if err := CreateSchema(ctx, db); err != nil {
		return err
	}
	return seedContacts(ctx, db)
}

// CreateSchema creates the contacts table and its index.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create index for ordered listing
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_contacts_name
		ON contacts(name COLLATE NOCASE)
	`)
	return err
}

// seedContacts inserts the demo directory if the contacts table is empty
func seedContacts(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return err
	}

	// If contacts exist, don't seed
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range SeedContacts {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (name, detail) VALUES (?, ?)",
			c.Name, c.Detail,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
