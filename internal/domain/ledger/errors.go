package ledger

import "frontdesk/internal/pkg/errs"

var (
	// Lookup failures.
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrCardNotFound        = errs.New("card not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrReservationNotFound = errs.New("reservation not found")

	// Lifecycle violations.
	ErrReservationActive = errs.New("reservation is already checked in")
	ErrPaymentRequired   = errs.New("payment required before check-in")
	ErrAlreadyCheckedIn  = errs.New("stay is already active")
	ErrRoomOccupied      = errs.New("room is occupied by another active stay")
	ErrNotCheckedIn      = errs.New("no active stay")
	ErrNoActiveCard      = errs.New("no active card for the stay's room")

	// Validation and identity.
	ErrInvalidStayLength = errs.New("stay length must be positive")
	ErrCardExists        = errs.New("card already exists")
	ErrProviderMismatch  = errs.New("pending service belongs to another provider")
)
