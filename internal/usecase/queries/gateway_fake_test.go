//go:build unit

package queries_test

import (
	"context"
	"errors"
	"net/url"

	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra/octo"
)

var errUnexpectedCall = errors.New("unexpected supplier call")

// fakeGateway stubs the supplier port with per-method functions. Methods
// without a stub report an unexpected call instead of panicking.
type fakeGateway struct {
	products             func(ctx context.Context, cred credential.Credential) ([]octo.Product, error)
	product              func(ctx context.Context, cred credential.Credential, productID string) (octo.Product, error)
	availability         func(ctx context.Context, cred credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error)
	availabilityCalendar func(ctx context.Context, cred credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error)
	createBooking        func(ctx context.Context, cred credential.Credential, req octo.CreateBookingRequest) (octo.Booking, error)
	confirmBooking       func(ctx context.Context, cred credential.Credential, bookingUUID string, req octo.ConfirmBookingRequest) (octo.Booking, error)
	cancelBooking        func(ctx context.Context, cred credential.Credential, bookingID string, req octo.CancelBookingRequest) (octo.Booking, error)
	booking              func(ctx context.Context, cred credential.Credential, bookingID string) (octo.Booking, error)
	listBookings         func(ctx context.Context, cred credential.Credential, params url.Values) ([]octo.Booking, error)
}

func (f *fakeGateway) Products(ctx context.Context, cred credential.Credential) ([]octo.Product, error) {
	if f.products == nil {
		return nil, errUnexpectedCall
	}
	return f.products(ctx, cred)
}

func (f *fakeGateway) Product(ctx context.Context, cred credential.Credential, productID string) (octo.Product, error) {
	if f.product == nil {
		return octo.Product{}, errUnexpectedCall
	}
	return f.product(ctx, cred, productID)
}

func (f *fakeGateway) Availability(ctx context.Context, cred credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error) {
	if f.availability == nil {
		return nil, errUnexpectedCall
	}
	return f.availability(ctx, cred, req)
}

func (f *fakeGateway) AvailabilityCalendar(ctx context.Context, cred credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error) {
	if f.availabilityCalendar == nil {
		return nil, errUnexpectedCall
	}
	return f.availabilityCalendar(ctx, cred, req)
}

func (f *fakeGateway) CreateBooking(ctx context.Context, cred credential.Credential, req octo.CreateBookingRequest) (octo.Booking, error) {
	if f.createBooking == nil {
		return octo.Booking{}, errUnexpectedCall
	}
	return f.createBooking(ctx, cred, req)
}

func (f *fakeGateway) ConfirmBooking(ctx context.Context, cred credential.Credential, bookingUUID string, req octo.ConfirmBookingRequest) (octo.Booking, error) {
	if f.confirmBooking == nil {
		return octo.Booking{}, errUnexpectedCall
	}
	return f.confirmBooking(ctx, cred, bookingUUID, req)
}

func (f *fakeGateway) CancelBooking(ctx context.Context, cred credential.Credential, bookingID string, req octo.CancelBookingRequest) (octo.Booking, error) {
	if f.cancelBooking == nil {
		return octo.Booking{}, errUnexpectedCall
	}
	return f.cancelBooking(ctx, cred, bookingID, req)
}

func (f *fakeGateway) Booking(ctx context.Context, cred credential.Credential, bookingID string) (octo.Booking, error) {
	if f.booking == nil {
		return octo.Booking{}, errUnexpectedCall
	}
	return f.booking(ctx, cred, bookingID)
}

func (f *fakeGateway) ListBookings(ctx context.Context, cred credential.Credential, params url.Values) ([]octo.Booking, error) {
	if f.listBookings == nil {
		return nil, errUnexpectedCall
	}
	return f.listBookings(ctx, cred, params)
}
