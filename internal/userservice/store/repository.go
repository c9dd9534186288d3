// Package store contains the user record store: the repository interface the
// service is built against plus its in-memory and Postgres implementations.
package store

import (
	"context"

	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/models"
)

// Repository is the user store injected into the service at construction.
// Get returns common.ErrNotFound when no record matches. List returns
// records in insertion order.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}
