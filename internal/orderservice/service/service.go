// Package service implements the order service operations, including the
// synchronous user-existence check performed before every order write.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/models"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/store"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

// UserChecker is the slice of the user service the order service depends on.
// Satisfied by the gRPC client; faked in tests.
type UserChecker interface {
	GetUser(ctx context.Context, userID string) (*pb.GetUserResponse, error)
}

type Service struct {
	repo   store.Repository
	users  UserChecker
	logger logging.Logger
}

func New(repo store.Repository, users UserChecker, logger logging.Logger) *Service {
	return &Service{repo: repo, users: users, logger: logger.With("module", "order_service")}
}

// CreateOrder validates its input, confirms the referenced user exists via
// the user service, and only then writes the order. The dependency call
// completes before the store write is attempted; an order is never persisted
// for an unknown user.
func (s *Service) CreateOrder(ctx context.Context, userID, product string, amount float64, quantity int32) (*models.Order, error) {
	if userID == "" || product == "" || amount <= 0 || quantity <= 0 {
		return nil, fmt.Errorf("%w: userId, product, amount and quantity are required", common.ErrInvalidArgument)
	}

	resp, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUserServiceUnavailable, err)
	}
	if !resp.GetSuccess() {
		return nil, common.ErrInvalidUser
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Product:   product,
		Amount:    amount,
		Quantity:  quantity,
		Status:    common.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info(ctx, "order created", "order_id", created.ID, "user_id", userID)
	return created, nil
}

// GetOrder returns the record with the given id, or common.ErrNotFound.
func (s *Service) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: order id is required", common.ErrInvalidArgument)
	}

	return s.repo.Get(ctx, id)
}

// GetOrdersByUser returns the user's orders in insertion order. An empty
// result is a successful outcome.
func (s *Service) GetOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrInvalidArgument)
	}

	return s.repo.ListByUser(ctx, userID)
}
