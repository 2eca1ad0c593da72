package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lifeboard/internal/models"
	"lifeboard/internal/repository"
)

type TaskService struct {
	tasks repository.Tasks
}

func NewTaskService(tasks repository.Tasks) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, ownerID int) ([]models.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Create(ctx context.Context, ownerID int, title, description string) (models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	t := models.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.tasks.Create(ctx, t)
	if err != nil {
		return models.Task{}, err
	}
	t.ID = id
	return t, nil
}

// Toggle flips the completed flag of the owner's task and returns the
// updated task.
func (s *TaskService) Toggle(ctx context.Context, ownerID, id int) (models.Task, error) {
	t, err := s.authorize(ctx, ownerID, id)
	if err != nil {
		return models.Task{}, err
	}
	if err := s.tasks.SetCompleted(ctx, id, !t.Completed); err != nil {
		return models.Task{}, err
	}
	t.Completed = !t.Completed
	return *t, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id int) error {
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// authorize is the ownership gate for mutations of an existing task.
func (s *TaskService) authorize(ctx context.Context, ownerID, id int) (*models.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	if t.UserID != ownerID {
		return nil, ErrForbidden
	}
	return t, nil
}
