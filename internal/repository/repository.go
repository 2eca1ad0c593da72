package repository

import (
	"context"
	"database/sql"
	"time"

	"lifeboard/internal/models"
	"lifeboard/internal/repository/db"
)

// InitDB opens the SQLite file and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}

type Users interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// Notes is pure storage: owner scoping on reads, no ownership checks on
// writes. Authorization lives in the service layer.
type Notes interface {
	Create(ctx context.Context, n models.Note) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Note, error)
	GetByID(ctx context.Context, id int) (*models.Note, error)
	Delete(ctx context.Context, id int) error
}

type Tasks interface {
	Create(ctx context.Context, t models.Task) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	SetCompleted(ctx context.Context, id int, completed bool) error
	Delete(ctx context.Context, id int) error
}

type Holdings interface {
	Create(ctx context.Context, h models.Holding) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Holding, error)
	GetByID(ctx context.Context, id int) (*models.Holding, error)
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users    Users
	Sessions Sessions
	Notes    Notes
	Tasks    Tasks
	Holdings Holdings
}

// NewRepository wires all SQLite-backed repositories over one connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Sessions: NewSessionSQLite(db),
		Notes:    NewNoteSQLite(db),
		Tasks:    NewTaskSQLite(db),
		Holdings: NewHoldingSQLite(db),
	}
}

// UseMemoryHoldings swaps the portfolio store for the process-lifetime
// in-memory variant. Everything else stays SQLite-backed.
func (r *Repository) UseMemoryHoldings() {
	r.Holdings = NewHoldingMemory()
}
