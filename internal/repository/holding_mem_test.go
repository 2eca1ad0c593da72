package repository

import (
	"context"
	"sync"
	"testing"

	"lifeboard/internal/models"
)

func TestHoldingMemory_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewHoldingMemory()

	id1, err := repo.Create(ctx, models.Holding{UserID: 1, Symbol: "AAPL", Shares: 10, Price: 150})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	id2, err := repo.Create(ctx, models.Holding{UserID: 2, Symbol: "MSFT", Shares: 5, Price: 300})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	// list is scoped to the owner
	mine, err := repo.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].Symbol != "AAPL" {
		t.Fatalf("unexpected holdings for user 1: %+v", mine)
	}

	// get by id ignores owner (the service layer enforces ownership)
	h, err := repo.GetByID(ctx, id2)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if h == nil || h.UserID != 2 {
		t.Fatalf("unexpected holding: %+v", h)
	}

	if err := repo.Delete(ctx, id1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	h, _ = repo.GetByID(ctx, id1)
	if h != nil {
		t.Fatalf("expected nil after delete, got %+v", h)
	}

	// deleting again is harmless
	if err := repo.Delete(ctx, id1); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}

func TestHoldingMemory_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewHoldingMemory()

	for _, sym := range []string{"AAPL", "MSFT", "GOOG"} {
		if _, err := repo.Create(ctx, models.Holding{UserID: 1, Symbol: sym, Shares: 1, Price: 1}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	hs, err := repo.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	want := []string{"AAPL", "MSFT", "GOOG"}
	for i, sym := range want {
		if hs[i].Symbol != sym {
			t.Fatalf("position %d: want %q, got %q", i, sym, hs[i].Symbol)
		}
	}
}

func TestHoldingMemory_ConcurrentAddDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewHoldingMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id, err := repo.Create(ctx, models.Holding{UserID: 1, Symbol: "AAPL", Shares: 1, Price: 1})
				if err != nil {
					t.Errorf("Create returned error: %v", err)
					return
				}
				if j%2 == 0 {
					if err := repo.Delete(ctx, id); err != nil {
						t.Errorf("Delete returned error: %v", err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	hs, err := repo.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(hs) != 16*25 {
		t.Fatalf("expected %d surviving holdings, got %d", 16*25, len(hs))
	}
}
