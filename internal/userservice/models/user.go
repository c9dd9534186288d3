// Package models defines the records owned by the user service.
package models

import "time"

// User is a user record. ID is assigned once at creation and never changes.
type User struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
