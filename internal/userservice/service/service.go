// Package service implements the user service operations on top of the
// injected store.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/models"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/store"
)

type Service struct {
	repo   store.Repository
	logger logging.Logger
}

func New(repo store.Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger.With("module", "user_service")}
}

// CreateUser allocates a fresh id, stamps the creation time and stores the
// record. Name and address are required.
func (s *Service) CreateUser(ctx context.Context, name, address string) (*models.User, error) {
	if name == "" || address == "" {
		return nil, fmt.Errorf("%w: name and address are required", common.ErrInvalidArgument)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info(ctx, "user created", "user_id", created.ID)
	return created, nil
}

// GetUser returns the record with the given id, or common.ErrNotFound.
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrInvalidArgument)
	}

	return s.repo.Get(ctx, id)
}

// ListUsers returns all user records in insertion order.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}
