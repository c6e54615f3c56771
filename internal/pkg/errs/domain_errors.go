package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking validation errors
	ErrInvalidDate            = errors.New("invalid booking date")
	ErrInsufficientLeadTime   = errors.New("bookings require at least one full day of lead time")
	ErrDuplicateActiveBooking = errors.New("client already holds an active booking for this service")

	// Transition errors; ownership mismatches surface as not-found so the
	// API does not leak which booking IDs exist
	ErrInvalidTransition = errors.New("booking status does not allow this transition")

	// Not-found errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrUserNotFound    = errors.New("user not found")

	// Payment errors
	ErrAlreadyPaid                 = errors.New("booking has already been paid for")
	ErrGatewayOrderFailed          = errors.New("payment gateway order creation failed")
	ErrSignatureVerificationFailed = errors.New("payment signature verification failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyTaken  = errors.New("email already registered")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
