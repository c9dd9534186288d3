package store

import (
	"context"
	"sync"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/models"
)

// MemoryRepository keeps order records in process memory. Inserts and
// lookups are single-step operations under one mutex.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Order
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.Order)}
}

func (r *MemoryRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := *order
	r.byID[o.ID] = &o
	r.order = append(r.order, o.ID)

	return order, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	copied := *o
	return &copied, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*models.Order, 0)
	for _, id := range r.order {
		if o := r.byID[id]; o.UserID == userID {
			copied := *o
			orders = append(orders, &copied)
		}
	}

	return orders, nil
}

// Len reports the number of stored records. Used by tests.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
