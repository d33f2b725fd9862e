package store

import (
	"context"
	"database/sql"
	"fmt"

	"notes-api/models"
)

type NoteStore struct {
	db *sql.DB
}

func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

// Create inserts a note owned by ownerID and returns its id. Nil title or
// content is stored as NULL; created_at is set by the database.
func (s *NoteStore) Create(ctx context.Context, ownerID int, title, content *string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (user_id, title, content) VALUES (?, ?, ?)",
		ownerID, title, content)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	return int(id), nil
}

// ListByOwner returns all notes belonging to ownerID. The slice is never nil
// so an empty result encodes as [] rather than null.
func (s *NoteStore) ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, title, content, created_at FROM notes WHERE user_id = ?",
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	return notes, nil
}

// Update overwrites title and content of the note matching both id and
// ownerID in a single statement. A missing note and a note owned by someone
// else both come back as ErrNotFound.
func (s *NoteStore) Update(ctx context.Context, id, ownerID int, title, content *string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, content = ? WHERE id = ? AND user_id = ?",
		title, content, id, ownerID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return requireRow(res)
}

// Delete removes the note matching both id and ownerID, with the same
// conjoined-filter semantics as Update.
func (s *NoteStore) Delete(ctx context.Context, id, ownerID int) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM notes WHERE id = ? AND user_id = ?",
		id, ownerID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
