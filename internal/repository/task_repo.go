package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifeboard/internal/models"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

var _ Tasks = (*TaskSQLite)(nil)

const (
	insertTaskSQL        = `INSERT INTO tasks (user_id, title, description, created_at, completed) VALUES (?, ?, ?, ?, ?)`
	selectTasksByUserSQL = `SELECT id, user_id, title, description, created_at, completed FROM tasks WHERE user_id = ? ORDER BY created_at DESC`
	selectTaskByIDSQL    = `SELECT id, user_id, title, description, created_at, completed FROM tasks WHERE id = ?`
	updateTaskDoneSQL    = `UPDATE tasks SET completed = ? WHERE id = ?`
	deleteTaskSQL        = `DELETE FROM tasks WHERE id = ?`
)

// Create inserts a new task. If CreatedAt is zero it is stamped with now.
func (r *TaskSQLite) Create(ctx context.Context, t models.Task) (int, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}
	res, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.UserID, t.Title, nullableString(t.Description), t.CreatedAt, t.Completed)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task: %w", err)
	}
	return int(lastID), nil
}

// ListByOwner returns the owner's tasks newest first.
func (r *TaskSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByUserSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a task regardless of owner. Returns (nil, nil) if not found.
func (r *TaskSQLite) GetByID(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTaskByIDSQL, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &t, nil
}

func (r *TaskSQLite) SetCompleted(ctx context.Context, id int, completed bool) error {
	if _, err := r.db.ExecContext(ctx, updateTaskDoneSQL, completed, id); err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

func (r *TaskSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteTaskSQL, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (models.Task, error) {
	var (
		t    models.Task
		desc sql.NullString
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.Title, &desc, &t.CreatedAt, &t.Completed); err != nil {
		return models.Task{}, err
	}
	t.Description = desc.String
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
