// Package store contains the order record store: the repository interface
// the service is built against plus its in-memory and Postgres
// implementations.
package store

import (
	"context"

	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/models"
)

// Repository is the order store injected into the service at construction.
// Get returns common.ErrNotFound when no record matches. ListByUser returns
// the user's orders in insertion order; no matches is an empty slice, not an
// error.
type Repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
}
