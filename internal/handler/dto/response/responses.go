package response

import (
	"octo-connect/internal/domain/credential"
	"octo-connect/internal/usecase/shared"
)

// Result envelopes mirror the host's expected shapes: {products},
// {availability}, {booking}, {cancellation}, {bookings}, {quote}.

type ProductsResponse struct {
	Products []shared.ProductView `json:"products"`
}

type AvailabilityResponse struct {
	Availability [][]shared.AvailabilityView `json:"availability"`
}

type BookingResponse struct {
	Booking shared.BookingView `json:"booking"`
}

type CancellationResponse struct {
	Cancellation shared.BookingView `json:"cancellation"`
}

type BookingsResponse struct {
	Bookings []shared.BookingView `json:"bookings"`
}

type QuoteResponse struct {
	Quote []shared.QuoteView `json:"quote"`
}

type ValidateCredentialResponse struct {
	Valid bool `json:"valid"`
}

type CredentialTemplateResponse struct {
	Template map[string]credential.TemplateField `json:"template"`
}
