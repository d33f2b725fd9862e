// Package store wraps all database access. Every note operation is scoped by
// the owning user id; nothing outside this package touches the tables.
package store

import "errors"

var (
	// ErrNotFound is returned when a row does not exist, including when a
	// note exists but belongs to a different owner. The two cases are
	// indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when the users UNIQUE constraint
	// rejects an insert.
	ErrDuplicateUsername = errors.New("username already exists")
)
