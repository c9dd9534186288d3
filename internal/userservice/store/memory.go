package store

import (
	"context"
	"sync"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/models"
)

// MemoryRepository keeps user records in process memory. Lookups and inserts
// are single-step operations under one mutex, so concurrent requests cannot
// observe a half-written record.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.User
	order []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	r.byID[u.ID] = &u
	r.order = append(r.order, u.ID)

	return user, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	copied := *u
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.byID[id]
		users = append(users, &copied)
	}

	return users, nil
}

// Len reports the number of stored records. Used by tests.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
