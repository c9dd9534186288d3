package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fake backend clients ----

type fakeUserClient struct {
	createResp *pb.CreateUserResponse
	createErr  error

	getResp *pb.GetUserResponse
	getErr  error
	gotGet  *pb.GetUserRequest

	listResp *pb.ListUsersResponse
	listErr  error
}

func (f *fakeUserClient) CreateUser(ctx context.Context, in *pb.CreateUserRequest, opts ...grpc.CallOption) (*pb.CreateUserResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeUserClient) GetUser(ctx context.Context, in *pb.GetUserRequest, opts ...grpc.CallOption) (*pb.GetUserResponse, error) {
	f.gotGet = in
	return f.getResp, f.getErr
}

func (f *fakeUserClient) ListUsers(ctx context.Context, in *pb.ListUsersRequest, opts ...grpc.CallOption) (*pb.ListUsersResponse, error) {
	return f.listResp, f.listErr
}

type fakeOrderClient struct {
	createResp *pb.CreateOrderResponse
	createErr  error
	gotCreate  *pb.CreateOrderRequest

	getResp *pb.GetOrderResponse
	getErr  error

	listResp *pb.GetOrdersByUserResponse
	listErr  error
}

func (f *fakeOrderClient) CreateOrder(ctx context.Context, in *pb.CreateOrderRequest, opts ...grpc.CallOption) (*pb.CreateOrderResponse, error) {
	f.gotCreate = in
	return f.createResp, f.createErr
}

func (f *fakeOrderClient) GetOrder(ctx context.Context, in *pb.GetOrderRequest, opts ...grpc.CallOption) (*pb.GetOrderResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeOrderClient) GetOrdersByUser(ctx context.Context, in *pb.GetOrdersByUserRequest, opts ...grpc.CallOption) (*pb.GetOrdersByUserResponse, error) {
	return f.listResp, f.listErr
}

// ---- helpers ----

func newTestRouter(users pb.UserServiceClient, orders pb.OrderServiceClient) http.Handler {
	h := NewHandlers(users, orders, "localhost:50051", "localhost:50052", nopLogger{})
	return NewRouter(h)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
}

func sampleUser() *pb.User {
	return &pb.User{Id: "u1", Name: "Alex", Address: "Riga", CreatedAt: 1700000000}
}

func sampleOrder() *pb.Order {
	return &pb.Order{Id: "o1", UserId: "u1", Product: "Widget", Amount: 9.99, Quantity: 2, Status: "pending", CreatedAt: 1700000000}
}

// ---- users ----

func TestCreateUserRoute_Created(t *testing.T) {
	users := &fakeUserClient{createResp: &pb.CreateUserResponse{
		Success: true, Message: "User created successfully", User: sampleUser(),
	}}
	router := newTestRouter(users, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodPost, "/api/users", `{"name":"Alex","address":"Riga"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body userEnvelope
	decodeBody(t, rec, &body)
	if !body.Success || body.User == nil || body.User.ID != "u1" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.User.CreatedAt != "2023-11-14T22:13:20Z" {
		t.Fatalf("created_at not RFC3339: %q", body.User.CreatedAt)
	}
}

func TestCreateUserRoute_InvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeUserClient{}, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodPost, "/api/users", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestCreateUserRoute_BackendRejection(t *testing.T) {
	users := &fakeUserClient{createResp: &pb.CreateUserResponse{
		Success: false, Message: "invalid argument: name and address are required",
	}}
	router := newTestRouter(users, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodPost, "/api/users", `{"name":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}

	var body userEnvelope
	decodeBody(t, rec, &body)
	if body.Success || body.Message == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateUserRoute_BackendDown(t *testing.T) {
	users := &fakeUserClient{createErr: status.Error(codes.Unavailable, "connection refused")}
	router := newTestRouter(users, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodPost, "/api/users", `{"name":"Alex","address":"Riga"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", rec.Code)
	}

	var body errorEnvelope
	decodeBody(t, rec, &body)
	if body.Success || body.Message != "Internal server error" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !strings.Contains(body.Error, "connection refused") {
		t.Fatalf("error detail should carry the cause, got %q", body.Error)
	}
}

func TestGetUserRoute_OK(t *testing.T) {
	users := &fakeUserClient{getResp: &pb.GetUserResponse{
		Success: true, Message: "User found", User: sampleUser(),
	}}
	router := newTestRouter(users, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodGet, "/api/users/u1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
	if users.gotGet.GetUserId() != "u1" {
		t.Fatalf("backend called with wrong id: %q", users.gotGet.GetUserId())
	}
}

func TestGetUserRoute_NotFound(t *testing.T) {
	users := &fakeUserClient{getResp: &pb.GetUserResponse{Success: false, Message: "User not found"}}
	router := newTestRouter(users, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodGet, "/api/users/nonexistent", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}

	var body userEnvelope
	decodeBody(t, rec, &body)
	if body.Success || body.Message != "User not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetUserRoute_SentinelIDsRejectedLocally(t *testing.T) {
	users := &fakeUserClient{}
	router := newTestRouter(users, &fakeOrderClient{})

	for _, id := range []string{"undefined", "null", "%20"} {
		rec := doRequest(t, router, http.MethodGet, "/api/users/"+id, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: want 400, got %d", id, rec.Code)
		}
	}
	if users.gotGet != nil {
		t.Fatalf("sentinel ids must not reach the backend, saw %+v", users.gotGet)
	}
}

func TestListUsersRoute_OK(t *testing.T) {
	users := &fakeUserClient{listResp: &pb.ListUsersResponse{
		Success: true, Message: "Users retrieved successfully", Users: []*pb.User{sampleUser()},
	}}
	router := newTestRouter(users, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodGet, "/api/users", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body usersEnvelope
	decodeBody(t, rec, &body)
	if !body.Success || len(body.Users) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ---- orders ----

func TestCreateOrderRoute_NumericFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json numbers", `{"userId":"u1","product":"Widget","amount":9.99,"quantity":2}`},
		{"string numbers", `{"userId":"u1","product":"Widget","amount":"9.99","quantity":"2"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders := &fakeOrderClient{createResp: &pb.CreateOrderResponse{
				Success: true, Message: "Order created successfully", Order: sampleOrder(),
			}}
			router := newTestRouter(&fakeUserClient{}, orders)

			rec := doRequest(t, router, http.MethodPost, "/api/orders", tc.body)
			if rec.Code != http.StatusCreated {
				t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
			}
			if orders.gotCreate.GetAmount() != 9.99 || orders.gotCreate.GetQuantity() != 2 {
				t.Fatalf("coercion lost values: %+v", orders.gotCreate)
			}
		})
	}
}

func TestCreateOrderRoute_BadNumericFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"amount not a number", `{"userId":"u1","product":"Widget","amount":"abc","quantity":2}`},
		{"quantity not an integer", `{"userId":"u1","product":"Widget","amount":9.99,"quantity":"two"}`},
		{"quantity fractional", `{"userId":"u1","product":"Widget","amount":9.99,"quantity":1.5}`},
		{"amount missing", `{"userId":"u1","product":"Widget","quantity":2}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders := &fakeOrderClient{}
			router := newTestRouter(&fakeUserClient{}, orders)

			rec := doRequest(t, router, http.MethodPost, "/api/orders", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if orders.gotCreate != nil {
				t.Fatalf("malformed input must not reach the backend, saw %+v", orders.gotCreate)
			}
		})
	}
}

func TestCreateOrderRoute_UnknownUser(t *testing.T) {
	orders := &fakeOrderClient{createResp: &pb.CreateOrderResponse{
		Success: false, Message: "Invalid User ID",
	}}
	router := newTestRouter(&fakeUserClient{}, orders)

	rec := doRequest(t, router, http.MethodPost, "/api/orders",
		`{"userId":"nonexistent","product":"Widget","amount":9.99,"quantity":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}

	var body orderEnvelope
	decodeBody(t, rec, &body)
	if body.Success || body.Message != "Invalid User ID" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetOrderRoute_NotFound(t *testing.T) {
	orders := &fakeOrderClient{getResp: &pb.GetOrderResponse{Success: false, Message: "Order not found"}}
	router := newTestRouter(&fakeUserClient{}, orders)

	rec := doRequest(t, router, http.MethodGet, "/api/orders/nonexistent", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

func TestListOrdersByUserRoute_OK(t *testing.T) {
	orders := &fakeOrderClient{listResp: &pb.GetOrdersByUserResponse{
		Success: true, Message: "Orders retrieved successfully", Orders: []*pb.Order{sampleOrder()},
	}}
	router := newTestRouter(&fakeUserClient{}, orders)

	rec := doRequest(t, router, http.MethodGet, "/api/users/u1/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body ordersEnvelope
	decodeBody(t, rec, &body)
	if !body.Success || len(body.Orders) != 1 || body.Orders[0].Product != "Widget" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ---- health ----

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(&fakeUserClient{}, &fakeOrderClient{})

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body healthResponse
	decodeBody(t, rec, &body)
	if body.Status != "healthy" || body.Timestamp == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Services["user_service"] != "localhost:50051" || body.Services["order_service"] != "localhost:50052" {
		t.Fatalf("unexpected services map: %+v", body.Services)
	}
}
