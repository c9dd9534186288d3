package httpapi

import (
	"context"
	"net"
	"net/http"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	ordergrpc "github.com/riyal-rj/Microservices-GRPC/internal/orderservice/grpc"
	orderservice "github.com/riyal-rj/Microservices-GRPC/internal/orderservice/service"
	orderstore "github.com/riyal-rj/Microservices-GRPC/internal/orderservice/store"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
	usergrpc "github.com/riyal-rj/Microservices-GRPC/internal/userservice/grpc"
	userservice "github.com/riyal-rj/Microservices-GRPC/internal/userservice/service"
	userstore "github.com/riyal-rj/Microservices-GRPC/internal/userservice/store"
)

// The full translation path: external JSON in, real gRPC services behind
// in-memory transports, external JSON out.

type userCheckerClient struct {
	api pb.UserServiceClient
}

func (c *userCheckerClient) GetUser(ctx context.Context, userID string) (*pb.GetUserResponse, error) {
	return c.api.GetUser(ctx, &pb.GetUserRequest{UserId: userID})
}

func startBackends(t *testing.T) (pb.UserServiceClient, pb.OrderServiceClient) {
	t.Helper()

	dialBuf := func(lis *bufconn.Listener) *grpc.ClientConn {
		conn, err := grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			t.Fatalf("dial error: %v", err)
		}
		t.Cleanup(func() { conn.Close() })
		return conn
	}

	userLis := bufconn.Listen(1024 * 1024)
	userSrv := grpc.NewServer()
	users := userservice.New(userstore.NewMemoryRepository(), nopLogger{})
	userHandler, err := usergrpc.NewGRPCServer("bufnet", nopLogger{}, users)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}
	pb.RegisterUserServiceServer(userSrv, userHandler)
	go userSrv.Serve(userLis)
	t.Cleanup(userSrv.Stop)

	userConn := dialBuf(userLis)
	userClient := pb.NewUserServiceClient(userConn)

	orderLis := bufconn.Listen(1024 * 1024)
	orderSrv := grpc.NewServer()
	orders := orderservice.New(orderstore.NewMemoryRepository(), &userCheckerClient{api: userClient}, nopLogger{})
	orderHandler, err := ordergrpc.NewGRPCServer("bufnet", nopLogger{}, orders)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}
	pb.RegisterOrderServiceServer(orderSrv, orderHandler)
	go orderSrv.Serve(orderLis)
	t.Cleanup(orderSrv.Stop)

	orderConn := dialBuf(orderLis)
	return userClient, pb.NewOrderServiceClient(orderConn)
}

func TestGateway_EndToEnd(t *testing.T) {
	userClient, orderClient := startBackends(t)
	router := newTestRouter(userClient, orderClient)

	// Create a user through the gateway.
	rec := doRequest(t, router, http.MethodPost, "/api/users", `{"name":"Alex","address":"Riga"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user: want 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created userEnvelope
	decodeBody(t, rec, &created)
	if !created.Success || created.User == nil || created.User.ID == "" {
		t.Fatalf("unexpected create response: %+v", created)
	}
	userID := created.User.ID

	// Order for that user, quantity sent as a string.
	rec = doRequest(t, router, http.MethodPost, "/api/orders",
		`{"userId":"`+userID+`","product":"Widget","amount":9.99,"quantity":"2"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: want 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var orderBody orderEnvelope
	decodeBody(t, rec, &orderBody)
	if !orderBody.Success || orderBody.Order == nil {
		t.Fatalf("unexpected order response: %+v", orderBody)
	}
	if orderBody.Order.Status != "pending" || orderBody.Order.Quantity != 2 {
		t.Fatalf("unexpected order payload: %+v", orderBody.Order)
	}

	// The user's listing holds exactly that order.
	rec = doRequest(t, router, http.MethodGet, "/api/users/"+userID+"/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list orders: want 200, got %d", rec.Code)
	}
	var listing ordersEnvelope
	decodeBody(t, rec, &listing)
	if len(listing.Orders) != 1 || listing.Orders[0].ID != orderBody.Order.ID {
		t.Fatalf("unexpected listing: %+v", listing.Orders)
	}

	// The composite profile joins both backends.
	rec = doRequest(t, router, http.MethodGet, "/api/users/"+userID+"/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var profile profileEnvelope
	decodeBody(t, rec, &profile)
	if profile.Data == nil || profile.Data.OrderCount != 1 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Data.User.Name != "Alex" {
		t.Fatalf("unexpected profile user: %+v", profile.Data.User)
	}
}

func TestGateway_EndToEnd_OrderForUnknownUser(t *testing.T) {
	userClient, orderClient := startBackends(t)
	router := newTestRouter(userClient, orderClient)

	rec := doRequest(t, router, http.MethodPost, "/api/orders",
		`{"userId":"nonexistent","product":"Widget","amount":9.99,"quantity":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var body orderEnvelope
	decodeBody(t, rec, &body)
	if body.Success || body.Message != "Invalid User ID" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGateway_EndToEnd_MissingUserProfile(t *testing.T) {
	userClient, orderClient := startBackends(t)
	router := newTestRouter(userClient, orderClient)

	rec := doRequest(t, router, http.MethodGet, "/api/users/nonexistent/profile", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", rec.Code, rec.Body.String())
	}

	var body profileEnvelope
	decodeBody(t, rec, &body)
	if body.Success || body.Message != "User not found" || body.Data != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}
