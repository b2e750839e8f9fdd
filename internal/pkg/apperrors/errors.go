// Package apperrors defines the domain error taxonomy shared by the service
// layers. Handlers map these onto HTTP status codes; everything else wraps
// them with context.
package apperrors

import "errors"

var (
	// ErrNotFound is returned when a referenced booking, driver or vehicle
	// does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidStatus is returned when a status value is not part of the
	// canonical vocabulary or its known aliases.
	ErrInvalidStatus = errors.New("unknown booking status")

	// ErrInvalidTransition is returned when a requested status transition is
	// not declared in the transition table.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrAssignmentConflict is returned when a driver or vehicle is already
	// bound to another active booking at write time.
	ErrAssignmentConflict = errors.New("resource is already assigned to an active booking")
)
