package models

import "time"

// Todo represents a single todo entry in a session.
// Identity is the ID: the store assigns it at creation and it never
// changes, so two todos are the same entry exactly when their IDs match.
type Todo struct {
	ID          int
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
