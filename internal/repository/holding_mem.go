package repository

import (
	"context"
	"sort"
	"sync"

	"lifeboard/internal/models"
)

// HoldingMemory is a process-lifetime portfolio store. State is lost on
// restart; concurrent handlers are safe because every access holds the mutex.
type HoldingMemory struct {
	mu     sync.Mutex
	nextID int
	items  map[int]models.Holding
}

func NewHoldingMemory() *HoldingMemory {
	return &HoldingMemory{nextID: 1, items: make(map[int]models.Holding)}
}

var _ Holdings = (*HoldingMemory)(nil)

func (r *HoldingMemory) Create(_ context.Context, h models.Holding) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.ID = r.nextID
	r.nextID++
	r.items[h.ID] = h
	return h.ID, nil
}

// ListByOwner returns the owner's holdings in insertion (id) order.
func (r *HoldingMemory) ListByOwner(_ context.Context, ownerID int) ([]models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Holding, 0, len(r.items))
	for _, h := range r.items {
		if h.UserID == ownerID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID returns (nil, nil) if not found, matching the SQLite repos.
func (r *HoldingMemory) GetByID(_ context.Context, id int) (*models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *HoldingMemory) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
