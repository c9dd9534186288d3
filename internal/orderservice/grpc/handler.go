package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/models"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

// Validation, rejected-user and not-found outcomes are carried inside a
// normal response as success=false plus a message. Only store faults use the
// gRPC status channel. A failed dependency call to the user service is
// reported in-band too, carrying the underlying error message.

func toProtoOrder(o *models.Order) *pb.Order {
	return &pb.Order{
		Id:        o.ID,
		UserId:    o.UserID,
		Product:   o.Product,
		Amount:    o.Amount,
		Quantity:  o.Quantity,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.Unix(),
	}
}

func (s *GRPCServer) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.CreateOrderResponse, error) {

	order, err := s.orders.CreateOrder(ctx, req.UserId, req.Product, req.Amount, req.Quantity)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidArgument):
			return &pb.CreateOrderResponse{Success: false, Message: err.Error()}, nil
		case errors.Is(err, common.ErrInvalidUser):
			return &pb.CreateOrderResponse{Success: false, Message: common.MsgInvalidUserID}, nil
		case errors.Is(err, common.ErrUserServiceUnavailable):
			s.logger.Error(ctx, "user lookup failed", "error", err.Error())
			return &pb.CreateOrderResponse{Success: false, Message: err.Error()}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.CreateOrderResponse{
		Success: true,
		Message: "Order created successfully",
		Order:   toProtoOrder(order),
	}, nil
}

func (s *GRPCServer) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.GetOrderResponse, error) {

	order, err := s.orders.GetOrder(ctx, req.OrderId)

	if err != nil {
		if errors.Is(err, common.ErrInvalidArgument) {
			return &pb.GetOrderResponse{Success: false, Message: err.Error()}, nil
		}
		if errors.Is(err, common.ErrNotFound) {
			return &pb.GetOrderResponse{Success: false, Message: common.MsgOrderNotFound}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.GetOrderResponse{
		Success: true,
		Message: "Order found",
		Order:   toProtoOrder(order),
	}, nil
}

func (s *GRPCServer) GetOrdersByUser(ctx context.Context, req *pb.GetOrdersByUserRequest) (*pb.GetOrdersByUserResponse, error) {

	orders, err := s.orders.GetOrdersByUser(ctx, req.UserId)

	if err != nil {
		if errors.Is(err, common.ErrInvalidArgument) {
			return &pb.GetOrdersByUserResponse{Success: false, Message: err.Error()}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	out := make([]*pb.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProtoOrder(o))
	}

	return &pb.GetOrdersByUserResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Orders:  out,
	}, nil
}
