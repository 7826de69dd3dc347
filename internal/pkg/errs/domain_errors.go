package errs

import "errors"

// Sentinel errors shared by the command and query sides. Handlers map them to HTTP statuses.
var (
	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room unavailable for the requested dates")
	ErrDuplicateRoomNumber = errors.New("room number already exists")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidGuest        = errors.New("invalid guest identity")

	// Subscriber errors
	ErrInvalidEmail       = errors.New("invalid email")
	ErrAlreadySubscribed  = errors.New("already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// Promotion errors
	ErrInvalidDay             = errors.New("invalid day")
	ErrPromotionAlreadyActive = errors.New("promotion already launched for the day")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidCursor    = errors.New("invalid cursor")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
