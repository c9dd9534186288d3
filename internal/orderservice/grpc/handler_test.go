package grpc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/service"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

func newTestServer(t *testing.T, checker service.UserChecker) *GRPCServer {
	t.Helper()
	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, newOrders(checker))
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}
	return srv
}

func validCreateReq() *pb.CreateOrderRequest {
	return &pb.CreateOrderRequest{UserId: "u1", Product: "Widget", Amount: 9.99, Quantity: 2}
}

func TestCreateOrder_OK(t *testing.T) {
	s := newTestServer(t, &fakeUserChecker{resp: &pb.GetUserResponse{Success: true}})

	resp, err := s.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if !resp.GetSuccess() {
		t.Fatalf("expected success, got message %q", resp.GetMessage())
	}
	if resp.GetMessage() != "Order created successfully" {
		t.Fatalf("unexpected message: %q", resp.GetMessage())
	}
	o := resp.GetOrder()
	if o.GetId() == "" || o.GetStatus() != common.OrderStatusPending {
		t.Fatalf("unexpected order payload: %+v", o)
	}
}

func TestCreateOrder_ValidationFailureIsInBand(t *testing.T) {
	s := newTestServer(t, &fakeUserChecker{resp: &pb.GetUserResponse{Success: true}})

	resp, err := s.CreateOrder(context.Background(), &pb.CreateOrderRequest{UserId: "u1", Product: "Widget"})
	if err != nil {
		t.Fatalf("validation failure must not use the status channel: %v", err)
	}
	if resp.GetSuccess() || resp.GetOrder() != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateOrder_UnknownUser(t *testing.T) {
	s := newTestServer(t, &fakeUserChecker{resp: &pb.GetUserResponse{Success: false, Message: common.MsgUserNotFound}})

	resp, err := s.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("a rejected user must not use the status channel: %v", err)
	}
	if resp.GetSuccess() {
		t.Fatal("expected success=false")
	}
	if resp.GetMessage() != common.MsgInvalidUserID {
		t.Fatalf("want %q, got %q", common.MsgInvalidUserID, resp.GetMessage())
	}
}

func TestCreateOrder_UserServiceDownIsInBand(t *testing.T) {
	s := newTestServer(t, &fakeUserChecker{err: errors.New("connection refused")})

	resp, err := s.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("a failed dependency call must not use the status channel: %v", err)
	}
	if resp.GetSuccess() {
		t.Fatal("expected success=false")
	}
	if !strings.Contains(resp.GetMessage(), "connection refused") {
		t.Fatalf("message should carry the cause, got %q", resp.GetMessage())
	}
}

func TestGetOrder_FoundAndNotFound(t *testing.T) {
	s := newTestServer(t, &fakeUserChecker{resp: &pb.GetUserResponse{Success: true}})

	created, err := s.CreateOrder(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	found, err := s.GetOrder(context.Background(), &pb.GetOrderRequest{OrderId: created.GetOrder().GetId()})
	if err != nil {
		t.Fatalf("GetOrder error: %v", err)
	}
	if !found.GetSuccess() || found.GetMessage() != "Order found" {
		t.Fatalf("unexpected response: %+v", found)
	}

	missing, err := s.GetOrder(context.Background(), &pb.GetOrderRequest{OrderId: "nonexistent"})
	if err != nil {
		t.Fatalf("a missing record must not use the status channel: %v", err)
	}
	if missing.GetSuccess() || missing.GetMessage() != common.MsgOrderNotFound {
		t.Fatalf("unexpected response: %+v", missing)
	}
}

func TestGetOrdersByUser_EmptyAndPopulated(t *testing.T) {
	s := newTestServer(t, &fakeUserChecker{resp: &pb.GetUserResponse{Success: true}})

	empty, err := s.GetOrdersByUser(context.Background(), &pb.GetOrdersByUserRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("GetOrdersByUser error: %v", err)
	}
	if !empty.GetSuccess() || len(empty.GetOrders()) != 0 {
		t.Fatalf("unexpected response: %+v", empty)
	}

	if _, err := s.CreateOrder(context.Background(), validCreateReq()); err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	listed, err := s.GetOrdersByUser(context.Background(), &pb.GetOrdersByUserRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("GetOrdersByUser error: %v", err)
	}
	if len(listed.GetOrders()) != 1 || listed.GetOrders()[0].GetProduct() != "Widget" {
		t.Fatalf("unexpected listing: %+v", listed.GetOrders())
	}
}
