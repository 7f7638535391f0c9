package shared

import (
	"context"
	"net/url"

	"octo-connect/internal/domain/availability"
	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/intenttoken"
)

// SupplierGateway is the outbound port to the supplier's REST API.
type SupplierGateway interface {
	Products(ctx context.Context, cred credential.Credential) ([]octo.Product, error)
	Product(ctx context.Context, cred credential.Credential, productID string) (octo.Product, error)
	Availability(ctx context.Context, cred credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error)
	AvailabilityCalendar(ctx context.Context, cred credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error)
	CreateBooking(ctx context.Context, cred credential.Credential, req octo.CreateBookingRequest) (octo.Booking, error)
	ConfirmBooking(ctx context.Context, cred credential.Credential, bookingUUID string, req octo.ConfirmBookingRequest) (octo.Booking, error)
	CancelBooking(ctx context.Context, cred credential.Credential, bookingID string, req octo.CancelBookingRequest) (octo.Booking, error)
	Booking(ctx context.Context, cred credential.Credential, bookingID string) (octo.Booking, error)
	ListBookings(ctx context.Context, cred credential.Credential, params url.Values) ([]octo.Booking, error)
}

// AvailabilityVars are the template variables handed to availability
// translation. The signer travels with them so the intent token is minted as
// part of the translation step, not before it.
type AvailabilityVars struct {
	ProductID string
	OptionID  string
	Currency  string
	Units     []availability.UnitQuantity
	Signer    *intenttoken.Signer
}

// Translator maps raw supplier payloads into host-facing views. The
// connector depends only on this signature, not on the mapping internals.
type Translator interface {
	Product(p octo.Product) (ProductView, error)
	Availability(a octo.Availability, vars AvailabilityVars) (AvailabilityView, error)
	Calendar(a octo.Availability) (AvailabilityView, error)
	Booking(b octo.Booking, product ProductView, option OptionView) (BookingView, error)
}
