package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrSlotTaken                = errors.New("slot already taken")
	ErrCustomerHasActiveBooking = errors.New("customer already has an active booking")
	ErrUnknownSlot              = errors.New("unknown slot label")
	ErrSlotInPast               = errors.New("slot time already passed")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("status transition not permitted")

	// Rating errors
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrRatingAlreadyExists = errors.New("rating already exists for this booking")

	// Notification errors
	ErrDeliveryFailure = errors.New("notification delivery failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
