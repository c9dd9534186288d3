// Package grpc exposes the order service over its internal RPC endpoint.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/service"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

type GRPCServer struct {
	pb.UnimplementedOrderServiceServer
	address string
	orders  *service.Service
	logger  logging.Logger
}

func NewGRPCServer(addr string, l logging.Logger, os *service.Service) (*GRPCServer, error) {
	return &GRPCServer{
		address: addr,
		logger:  l.With("module", "grpc_server"),
		orders:  os,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()

	pb.RegisterOrderServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
