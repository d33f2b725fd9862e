package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Note belongs to exactly one user. Title and Content are nullable in the
// schema; a nil pointer round-trips as JSON null.
type Note struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"user_id"`
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
