package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

type userResult struct {
	resp *pb.GetUserResponse
	err  error
}

type ordersResult struct {
	resp *pb.GetOrdersByUserResponse
	err  error
}

// GetProfile is the composite route: the user lookup and the order listing
// are independent, so both calls are issued before either is awaited and the
// response latency is bounded by the slower of the two. The join waits for
// both results; the user's existence decides the overall outcome, whatever
// the orders call returned.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if invalidPathID(id) {
		writeBadRequest(w, "Valid user ID is required")
		return
	}

	ctx := r.Context()
	userCh := make(chan userResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		resp, err := h.users.GetUser(ctx, &pb.GetUserRequest{UserId: id})
		userCh <- userResult{resp: resp, err: err}
	}()
	go func() {
		resp, err := h.orders.GetOrdersByUser(ctx, &pb.GetOrdersByUserRequest{UserId: id})
		ordersCh <- ordersResult{resp: resp, err: err}
	}()

	user := <-userCh
	orders := <-ordersCh

	if user.err != nil {
		h.logger.Error(ctx, "profile user lookup failed", "error", user.err.Error())
		writeInternalError(w, user.err)
		return
	}
	if orders.err != nil {
		h.logger.Error(ctx, "profile order listing failed", "error", orders.err.Error())
		writeInternalError(w, orders.err)
		return
	}

	if !user.resp.GetSuccess() {
		writeJSON(w, http.StatusNotFound, profileEnvelope{Success: false, Message: common.MsgUserNotFound})
		return
	}

	orderList := toOrdersJSON(orders.resp.GetOrders())

	writeJSON(w, http.StatusOK, profileEnvelope{
		Success: true,
		Message: "User profile retrieved successfully",
		Data: &profileData{
			User:       toUserJSON(user.resp.GetUser()),
			Orders:     orderList,
			OrderCount: len(orderList),
		},
	})
}
