package service

import (
	"context"
	"fmt"
	"strings"

	"lifeboard/internal/models"
	"lifeboard/internal/repository"
)

type NoteService struct {
	notes repository.Notes
}

func NewNoteService(notes repository.Notes) *NoteService {
	return &NoteService{notes: notes}
}

func (s *NoteService) List(ctx context.Context, ownerID int) ([]models.Note, error) {
	return s.notes.ListByOwner(ctx, ownerID)
}

// Create stores a note for ownerID. The owner always comes from the resolved
// session, never from client input.
func (s *NoteService) Create(ctx context.Context, ownerID int, content string) (models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return models.Note{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	n := models.Note{UserID: ownerID, Content: content}
	id, err := s.notes.Create(ctx, n)
	if err != nil {
		return models.Note{}, err
	}
	n.ID = id
	return n, nil
}

// Delete removes a note after the ownership gate: absent id is ErrNotFound,
// someone else's note is ErrForbidden, and the note is untouched on either.
func (s *NoteService) Delete(ctx context.Context, ownerID, id int) error {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotFound
	}
	if n.UserID != ownerID {
		return ErrForbidden
	}
	return s.notes.Delete(ctx, id)
}
