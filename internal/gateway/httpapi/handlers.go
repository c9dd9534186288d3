// Package httpapi is the gateway's external surface: it decodes external
// JSON calls, routes each one to the backend call(s) that serve it, and
// translates results and failures back.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/riyal-rj/Microservices-GRPC/internal/logging"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

type Handlers struct {
	users     pb.UserServiceClient
	orders    pb.OrderServiceClient
	userAddr  string
	orderAddr string
	logger    logging.Logger
}

func NewHandlers(users pb.UserServiceClient, orders pb.OrderServiceClient, userAddr, orderAddr string, l logging.Logger) *Handlers {
	return &Handlers{
		users:     users,
		orders:    orders,
		userAddr:  userAddr,
		orderAddr: orderAddr,
		logger:    l.With("module", "httpapi"),
	}
}

type createUserRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	resp, err := h.users.CreateUser(r.Context(), &pb.CreateUserRequest{Name: req.Name, Address: req.Address})
	if err != nil {
		h.logger.Error(r.Context(), "create user failed", "error", err.Error())
		writeInternalError(w, err)
		return
	}

	if !resp.GetSuccess() {
		writeJSON(w, http.StatusBadRequest, userEnvelope{Success: false, Message: resp.GetMessage()})
		return
	}

	writeJSON(w, http.StatusCreated, userEnvelope{
		Success: true,
		Message: resp.GetMessage(),
		User:    toUserJSON(resp.GetUser()),
	})
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if invalidPathID(id) {
		writeBadRequest(w, "Valid user ID is required")
		return
	}

	resp, err := h.users.GetUser(r.Context(), &pb.GetUserRequest{UserId: id})
	if err != nil {
		h.logger.Error(r.Context(), "get user failed", "error", err.Error())
		writeInternalError(w, err)
		return
	}

	if !resp.GetSuccess() {
		writeJSON(w, http.StatusNotFound, userEnvelope{Success: false, Message: resp.GetMessage()})
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{
		Success: true,
		Message: resp.GetMessage(),
		User:    toUserJSON(resp.GetUser()),
	})
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.ListUsers(r.Context(), &pb.ListUsersRequest{})
	if err != nil {
		h.logger.Error(r.Context(), "list users failed", "error", err.Error())
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, usersEnvelope{
		Success: resp.GetSuccess(),
		Message: resp.GetMessage(),
		Users:   toUsersJSON(resp.GetUsers()),
	})
}

type createOrderRequest struct {
	UserID   string          `json:"userId"`
	Product  string          `json:"product"`
	Amount   json.RawMessage `json:"amount"`
	Quantity json.RawMessage `json:"quantity"`
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	resp, err := h.orders.CreateOrder(r.Context(), &pb.CreateOrderRequest{
		UserId:   req.UserID,
		Product:  req.Product,
		Amount:   amount,
		Quantity: quantity,
	})
	if err != nil {
		h.logger.Error(r.Context(), "create order failed", "error", err.Error())
		writeInternalError(w, err)
		return
	}

	if !resp.GetSuccess() {
		writeJSON(w, http.StatusBadRequest, orderEnvelope{Success: false, Message: resp.GetMessage()})
		return
	}

	writeJSON(w, http.StatusCreated, orderEnvelope{
		Success: true,
		Message: resp.GetMessage(),
		Order:   toOrderJSON(resp.GetOrder()),
	})
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if invalidPathID(id) {
		writeBadRequest(w, "Valid order ID is required")
		return
	}

	resp, err := h.orders.GetOrder(r.Context(), &pb.GetOrderRequest{OrderId: id})
	if err != nil {
		h.logger.Error(r.Context(), "get order failed", "error", err.Error())
		writeInternalError(w, err)
		return
	}

	if !resp.GetSuccess() {
		writeJSON(w, http.StatusNotFound, orderEnvelope{Success: false, Message: resp.GetMessage()})
		return
	}

	writeJSON(w, http.StatusOK, orderEnvelope{
		Success: true,
		Message: resp.GetMessage(),
		Order:   toOrderJSON(resp.GetOrder()),
	})
}

func (h *Handlers) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if invalidPathID(id) {
		writeBadRequest(w, "Valid user ID is required")
		return
	}

	resp, err := h.orders.GetOrdersByUser(r.Context(), &pb.GetOrdersByUserRequest{UserId: id})
	if err != nil {
		h.logger.Error(r.Context(), "list orders failed", "error", err.Error())
		writeInternalError(w, err)
		return
	}

	if !resp.GetSuccess() {
		writeJSON(w, http.StatusBadRequest, ordersEnvelope{Success: false, Message: resp.GetMessage()})
		return
	}

	writeJSON(w, http.StatusOK, ordersEnvelope{
		Success: true,
		Message: resp.GetMessage(),
		Orders:  toOrdersJSON(resp.GetOrders()),
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]string{
			"user_service":  h.userAddr,
			"order_service": h.orderAddr,
		},
	})
}
