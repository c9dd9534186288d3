package common

// Canonical response messages. These are part of the external contract and
// must not be reworded.
const (
	MsgInvalidUserID   = "Invalid User ID"
	MsgUserNotFound    = "User not found"
	MsgOrderNotFound   = "Order not found"
	MsgInternalError   = "Internal server error"
	OrderStatusPending = "pending"
)
