package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifeboard/internal/models"
)

type SessionSQLite struct {
	db *sql.DB
}

func NewSessionSQLite(db *sql.DB) *SessionSQLite { return &SessionSQLite{db: db} }

var _ Sessions = (*SessionSQLite)(nil)

const (
	insertSessionSQL        = `INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`
	selectSessionSQL        = `SELECT id, user_id, expires_at FROM sessions WHERE id = ?`
	deleteSessionSQL        = `DELETE FROM sessions WHERE id = ?`
	deleteExpiredSessionSQL = `DELETE FROM sessions WHERE expires_at <= ?`
)

func (r *SessionSQLite) Create(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL, s.ID, s.UserID, s.ExpiresAt.UTC())
	if err != nil {
		return fmt.Errorf("insert session %q: %w", s.ID, err)
	}
	return nil
}

// Get fetches a session by id. Returns (nil, nil) if not found.
func (r *SessionSQLite) Get(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, selectSessionSQL, id).
		Scan(&s.ID, &s.UserID, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session %q: %w", id, err)
	}
	s.ExpiresAt = s.ExpiresAt.UTC()
	return &s, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (r *SessionSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session %q: %w", id, err)
	}
	return nil
}

// DeleteExpired removes all sessions whose expiry is at or before now and
// reports how many were removed.
func (r *SessionSQLite) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredSessionSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for expired sessions: %w", err)
	}
	return int(n), nil
}
