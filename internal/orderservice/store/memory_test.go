package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/models"
)

func TestMemoryCreateAndGet(t *testing.T) {
	r := NewMemoryRepository()

	o := &models.Order{
		ID:        "o1",
		UserID:    "u1",
		Product:   "Widget",
		Amount:    9.99,
		Quantity:  2,
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.Create(context.Background(), o); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := r.Get(context.Background(), "o1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Product != "Widget" || got.Quantity != 2 {
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

func TestMemoryListByUser_FiltersAndKeepsOrder(t *testing.T) {
	r := NewMemoryRepository()

	for _, o := range []*models.Order{
		{ID: "o1", UserID: "u1"},
		{ID: "o2", UserID: "u2"},
		{ID: "o3", UserID: "u1"},
	} {
		if _, err := r.Create(context.Background(), o); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	orders, err := r.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "o1" || orders[1].ID != "o3" {
		t.Fatalf("unexpected listing: %+v", orders)
	}
}

func TestMemoryListByUser_NoOrdersIsEmptyNotNil(t *testing.T) {
	r := NewMemoryRepository()

	orders, err := r.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if orders == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Fatalf("want no orders, got %d", len(orders))
	}
}
