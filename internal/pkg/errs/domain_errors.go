package errs

import "errors"

// Domain-specific sentinel errors for the connector usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Availability errors
	ErrMismatchedQueryLengths = errors.New("mismatched productIds/optionIds/units lengths")
	ErrInvalidProductID       = errors.New("some invalid productId(s)")
	ErrInvalidOptionID        = errors.New("some invalid optionId(s)")
	ErrSignerNotConfigured    = errors.New("intent token signer not configured")
	ErrInvalidDateRange       = errors.New("invalid date range")

	// Intent token errors
	ErrInvalidIntentToken = errors.New("invalid intent token")

	// Booking errors
	ErrAvailabilityKeyRequired = errors.New("availability key required")
	ErrHolderNameRequired      = errors.New("holder name and surname required")
	ErrBookingIDRequired       = errors.New("booking id required")
	ErrBookingSearchCriteria   = errors.New("a booking id or a complete travel date range is required")
)
