package models

import "time"

// Contact is a single entry of the directory shown next to the slider
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail,omitempty"` // Free text shown under the name (phone, email, ...)
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the contact ID, used by quiet CLI output.
func (c *Contact) GetID() int {
	return c.ID
}

// Section is a run of contacts that share one slider label
type Section struct {
	Title    string     `json:"title"`
	Contacts []*Contact `json:"contacts"`
}
