package services

import "errors"

// Sentinel domain errors. Controllers translate these into HTTP status
// codes; anything else is reported as an internal error.
var (
	// ErrNotFound covers entities that are absent or outside the caller's
	// restaurant. Cross-tenant access is indistinguishable from absence.
	ErrNotFound = errors.New("record not found")

	// ErrItemNotFound is returned when an order line references an inventory
	// item that does not exist or is inactive.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrInsufficientStock is returned when an order line requests more than
	// the current quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrShiftAlreadyOpen is returned when a cash close is opened for a shift
	// that already has an open record.
	ErrShiftAlreadyOpen = errors.New("a cash close is already open for this shift")

	// ErrInvalidState is returned when an operation is not valid for the
	// record's current lifecycle state.
	ErrInvalidState = errors.New("operation not valid for current state")

	// ErrDuplicateEmail is returned on registration with an existing email.
	ErrDuplicateEmail = errors.New("email already registered")
)
