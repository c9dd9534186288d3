// Package common defines shared constants and sentinel errors used across
// the gateway and the backend services. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. The wrapping error carries the field detail.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidUser marks an order rejected because the referenced user
	// does not exist. Blocks the write; distinct from a failed read.
	ErrInvalidUser = errors.New("invalid user id")

	// ErrUserServiceUnavailable marks a failed dependency call to the user
	// service. The wrapping error carries the transport detail.
	ErrUserServiceUnavailable = errors.New("user service unavailable")
)
