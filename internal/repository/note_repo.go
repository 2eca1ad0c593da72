package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifeboard/internal/models"
)

type NoteSQLite struct {
	db *sql.DB
}

func NewNoteSQLite(db *sql.DB) *NoteSQLite { return &NoteSQLite{db: db} }

var _ Notes = (*NoteSQLite)(nil)

const (
	insertNoteSQL        = `INSERT INTO notes (user_id, content) VALUES (?, ?)`
	selectNotesByUserSQL = `SELECT id, user_id, content FROM notes WHERE user_id = ? ORDER BY id ASC`
	selectNoteByIDSQL    = `SELECT id, user_id, content FROM notes WHERE id = ?`
	deleteNoteSQL        = `DELETE FROM notes WHERE id = ?`
)

func (r *NoteSQLite) Create(ctx context.Context, n models.Note) (int, error) {
	res, err := r.db.ExecContext(ctx, insertNoteSQL, n.UserID, n.Content)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for note: %w", err)
	}
	return int(lastID), nil
}

// ListByOwner returns the owner's notes in insertion order.
func (r *NoteSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, selectNotesByUserSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select notes for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Note, 0, 16)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a note regardless of owner. Returns (nil, nil) if not found.
func (r *NoteSQLite) GetByID(ctx context.Context, id int) (*models.Note, error) {
	var n models.Note
	err := r.db.QueryRowContext(ctx, selectNoteByIDSQL, id).Scan(&n.ID, &n.UserID, &n.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select note %d: %w", id, err)
	}
	return &n, nil
}

func (r *NoteSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteNoteSQL, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}
