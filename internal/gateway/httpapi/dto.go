package httpapi

import (
	"time"

	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

// External JSON shapes. Field names are a contract with external callers.

type userJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

type orderJSON struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Product   string  `json:"product"`
	Amount    float64 `json:"amount"`
	Quantity  int32   `json:"quantity"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type userEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    *userJSON `json:"user"`
}

type usersEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Users   []*userJSON `json:"users"`
}

type orderEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Order   *orderJSON `json:"order"`
}

type ordersEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Orders  []*orderJSON `json:"orders"`
}

type profileData struct {
	User       *userJSON    `json:"user"`
	Orders     []*orderJSON `json:"orders"`
	OrderCount int          `json:"order_count"`
}

type profileEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *profileData `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

func toUserJSON(u *pb.User) *userJSON {
	if u == nil {
		return nil
	}
	return &userJSON{
		ID:        u.Id,
		Name:      u.Name,
		Address:   u.Address,
		CreatedAt: time.Unix(u.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}

func toUsersJSON(users []*pb.User) []*userJSON {
	out := make([]*userJSON, 0, len(users))
	for _, u := range users {
		out = append(out, toUserJSON(u))
	}
	return out
}

func toOrderJSON(o *pb.Order) *orderJSON {
	if o == nil {
		return nil
	}
	return &orderJSON{
		ID:        o.Id,
		UserID:    o.UserId,
		Product:   o.Product,
		Amount:    o.Amount,
		Quantity:  o.Quantity,
		Status:    o.Status,
		CreatedAt: time.Unix(o.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}

func toOrdersJSON(orders []*pb.Order) []*orderJSON {
	out := make([]*orderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	return out
}
