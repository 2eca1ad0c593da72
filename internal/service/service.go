package service

import (
	"context"
	"time"

	"lifeboard/internal/models"
	"lifeboard/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) (int, error)
	Verify(ctx context.Context, username, password string) (int, error)
}

// Sessions issues and revokes the opaque login tokens carried by clients.
type Sessions interface {
	Start(ctx context.Context, userID int) (string, error)
	Resolve(ctx context.Context, token string) (int, error)
	End(ctx context.Context, token string) error
	Sweep(ctx context.Context, interval time.Duration)
}

// Notes, Tasks and Portfolio all follow the same contract: the caller's
// identity comes in as an explicit ownerID resolved from the session, and
// every mutation of an existing resource re-checks ownership first.
type Notes interface {
	List(ctx context.Context, ownerID int) ([]models.Note, error)
	Create(ctx context.Context, ownerID int, content string) (models.Note, error)
	Delete(ctx context.Context, ownerID, id int) error
}

type Tasks interface {
	List(ctx context.Context, ownerID int) ([]models.Task, error)
	Create(ctx context.Context, ownerID int, title, description string) (models.Task, error)
	Toggle(ctx context.Context, ownerID, id int) (models.Task, error)
	Delete(ctx context.Context, ownerID, id int) error
}

type Portfolio interface {
	List(ctx context.Context, ownerID int) ([]models.Holding, error)
	Add(ctx context.Context, ownerID int, symbol string, shares, price float64) (models.Holding, error)
	Delete(ctx context.Context, ownerID, id int) error
	Search(ctx context.Context, symbol string) ([]models.Quote, error)
	Valuate(ctx context.Context, ownerID int) ([]models.Position, error)
}

// QuoteProvider is the external market-data lookup.
type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (models.Quote, error)
}

// Config carries the service-level knobs read from the config file.
type Config struct {
	SigningKey string
	SessionTTL time.Duration
}

type Service struct {
	Authorization
	Sessions
	Notes
	Tasks
	Portfolio
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, quotes QuoteProvider, cfg Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Sessions:      NewSessionService(repos.Sessions, cfg.SigningKey, cfg.SessionTTL),
		Notes:         NewNoteService(repos.Notes),
		Tasks:         NewTaskService(repos.Tasks),
		Portfolio:     NewPortfolioService(repos.Holdings, quotes),
	}
}
