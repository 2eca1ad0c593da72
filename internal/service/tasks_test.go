package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"lifeboard/internal/models"
)

// memTaskRepo is an in-memory repository.Tasks for controller tests.
type memTaskRepo struct {
	mu     sync.Mutex
	nextID int
	tasks  map[int]models.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{nextID: 1, tasks: make(map[int]models.Task)}
}

func (m *memTaskRepo) Create(_ context.Context, t models.Task) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.nextID
	m.nextID++
	m.tasks[t.ID] = t
	return t.ID, nil
}

func (m *memTaskRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Task
	for _, t := range m.tasks {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memTaskRepo) GetByID(_ context.Context, id int) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (m *memTaskRepo) SetCompleted(_ context.Context, id int, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return errors.New("no such task")
	}
	t.Completed = completed
	m.tasks[id] = t
	return nil
}

func (m *memTaskRepo) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
	return nil
}

func TestTaskService_Create_ValidatesTitleAndStampsOwner(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemTaskRepo())

	if _, err := svc.Create(ctx, aliceID, "  ", "desc"); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation for blank title, got %v", err)
	}

	task, err := svc.Create(ctx, aliceID, "buy milk", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.UserID != aliceID {
		t.Fatalf("task owner %d, want %d", task.UserID, aliceID)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}
	if task.Completed {
		t.Fatal("new task must not be completed")
	}
}

func TestTaskService_Toggle_FlipsAndReturnsTask(t *testing.T) {
	ctx := context.Background()
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(ctx, aliceID, "buy milk", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Toggle(ctx, aliceID, task.ID)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected completed=true after first toggle")
	}

	got, err = svc.Toggle(ctx, aliceID, task.ID)
	if err != nil {
		t.Fatalf("second Toggle returned error: %v", err)
	}
	if got.Completed {
		t.Fatal("expected completed=false after second toggle")
	}
}

// The alice/bob scenario: bob's attempt to mutate alice's task is denied and
// the task is still there when alice lists hers.
func TestTaskService_CrossUserMutationDenied(t *testing.T) {
	ctx := context.Background()
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(ctx, aliceID, "buy milk", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(ctx, bobID, task.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden for bob's delete, got %v", err)
	}
	if _, err := svc.Toggle(ctx, bobID, task.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden for bob's toggle, got %v", err)
	}

	aliceTasks, err := svc.List(ctx, aliceID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(aliceTasks) != 1 || aliceTasks[0].Title != "buy milk" {
		t.Fatalf("alice's task missing or changed: %+v", aliceTasks)
	}
	if aliceTasks[0].Completed {
		t.Fatal("denied toggle must leave the task unchanged")
	}

	bobTasks, err := svc.List(ctx, bobID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(bobTasks) != 0 {
		t.Fatalf("alice's task leaked into bob's list: %+v", bobTasks)
	}
}

func TestTaskService_MutateAbsentTask(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemTaskRepo())

	if _, err := svc.Toggle(ctx, aliceID, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, aliceID, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
