package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifeboard/internal/models"
)

type HoldingSQLite struct {
	db *sql.DB
}

func NewHoldingSQLite(db *sql.DB) *HoldingSQLite { return &HoldingSQLite{db: db} }

var _ Holdings = (*HoldingSQLite)(nil)

const (
	insertHoldingSQL        = `INSERT INTO holdings (user_id, symbol, shares, price) VALUES (?, ?, ?, ?)`
	selectHoldingsByUserSQL = `SELECT id, user_id, symbol, shares, price FROM holdings WHERE user_id = ? ORDER BY id ASC`
	selectHoldingByIDSQL    = `SELECT id, user_id, symbol, shares, price FROM holdings WHERE id = ?`
	deleteHoldingSQL        = `DELETE FROM holdings WHERE id = ?`
)

func (r *HoldingSQLite) Create(ctx context.Context, h models.Holding) (int, error) {
	res, err := r.db.ExecContext(ctx, insertHoldingSQL, h.UserID, h.Symbol, h.Shares, h.Price)
	if err != nil {
		return 0, fmt.Errorf("insert holding %q: %w", h.Symbol, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for holding %q: %w", h.Symbol, err)
	}
	return int(lastID), nil
}

// ListByOwner returns the owner's holdings in insertion order.
func (r *HoldingSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Holding, error) {
	rows, err := r.db.QueryContext(ctx, selectHoldingsByUserSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select holdings for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Holding, 0, 16)
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.UserID, &h.Symbol, &h.Shares, &h.Price); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a holding regardless of owner. Returns (nil, nil) if not found.
func (r *HoldingSQLite) GetByID(ctx context.Context, id int) (*models.Holding, error) {
	var h models.Holding
	err := r.db.QueryRowContext(ctx, selectHoldingByIDSQL, id).
		Scan(&h.ID, &h.UserID, &h.Symbol, &h.Shares, &h.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select holding %d: %w", id, err)
	}
	return &h, nil
}

func (r *HoldingSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteHoldingSQL, id); err != nil {
		return fmt.Errorf("delete holding %d: %w", id, err)
	}
	return nil
}
