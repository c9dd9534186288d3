package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/models"
)

// Validation and not-found outcomes are carried inside a normal response as
// success=false plus a message. Only store faults use the gRPC status channel.

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Name:      u.Name,
		Address:   u.Address,
		CreatedAt: u.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {

	user, err := s.users.CreateUser(ctx, req.Name, req.Address)

	if err != nil {
		if errors.Is(err, common.ErrInvalidArgument) {
			return &pb.CreateUserResponse{Success: false, Message: err.Error()}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.CreateUserResponse{
		Success: true,
		Message: "User created successfully",
		User:    toProtoUser(user),
	}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	user, err := s.users.GetUser(ctx, req.UserId)

	if err != nil {
		if errors.Is(err, common.ErrInvalidArgument) {
			return &pb.GetUserResponse{Success: false, Message: err.Error()}, nil
		}
		if errors.Is(err, common.ErrNotFound) {
			return &pb.GetUserResponse{Success: false, Message: common.MsgUserNotFound}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.GetUserResponse{
		Success: true,
		Message: "User found",
		User:    toProtoUser(user),
	}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	users, err := s.users.ListUsers(ctx)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	out := make([]*pb.User, 0, len(users))
	for _, u := range users {
		out = append(out, toProtoUser(u))
	}

	return &pb.ListUsersResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Users:   out,
	}, nil
}
