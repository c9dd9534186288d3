// Package models defines the records owned by the order service.
package models

import "time"

// Order is an order record. UserID referenced an existing user at the moment
// of creation; it is not re-validated afterwards.
type Order struct {
	ID        string
	UserID    string
	Product   string
	Amount    float64
	Quantity  int32
	Status    string
	CreatedAt time.Time
}
