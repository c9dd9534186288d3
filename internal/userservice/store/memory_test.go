package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/models"
)

func TestMemoryCreateAndGet(t *testing.T) {
	r := NewMemoryRepository()

	u := &models.User{ID: "u1", Name: "Alex", Address: "Riga", CreatedAt: time.Now().UTC()}
	if _, err := r.Create(context.Background(), u); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := r.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "Alex" || got.Address != "Riga" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestMemoryGetMissing(t *testing.T) {
	r := NewMemoryRepository()

	_, err := r.Get(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMemoryListInsertionOrder(t *testing.T) {
	r := NewMemoryRepository()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := r.Create(context.Background(), &models.User{ID: id}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	users, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("want 3 users, got %d", len(users))
	}
	for i, id := range []string{"a", "b", "c"} {
		if users[i].ID != id {
			t.Fatalf("position %d: want %q, got %q", i, id, users[i].ID)
		}
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	r := NewMemoryRepository()

	if _, err := r.Create(context.Background(), &models.User{ID: "u1", Name: "Alex"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	first, _ := r.Get(context.Background(), "u1")
	first.Name = "mutated"

	second, _ := r.Get(context.Background(), "u1")
	if second.Name != "Alex" {
		t.Fatalf("stored record was mutated through a returned pointer: %+v", second)
	}
}
