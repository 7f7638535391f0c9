package commands

import (
	"context"

	"octo-connect/internal/domain/booking"
	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/errs"
	"octo-connect/internal/pkg/intenttoken"
	"octo-connect/internal/usecase/queries"
	"octo-connect/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	AvailabilityKey string
	Holder          booking.Holder
	Notes           string
	Reference       string
}

type BookingCommands interface {
	// Create redeems a booking-intent key as a two-step remote transaction:
	// create the pending booking, then confirm it with the holder's contact
	// details. The confirmed booking is returned enriched with its product
	// and option.
	Create(ctx context.Context, cred credential.Credential, in CreateBookingInput) (shared.BookingView, error)
	Cancel(ctx context.Context, cred credential.Credential, q booking.CancelQuery) (shared.BookingView, error)
}

type bookingCommandsImpl struct {
	supplier   shared.SupplierGateway
	translator shared.Translator
	signer     *intenttoken.Signer
	products   queries.ProductQueries
}

func NewBookingCommands(
	supplier shared.SupplierGateway,
	translator shared.Translator,
	signer *intenttoken.Signer,
	products queries.ProductQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		supplier:   supplier,
		translator: translator,
		signer:     signer,
		products:   products,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, cred credential.Credential, in CreateBookingInput) (shared.BookingView, error) {
	if in.AvailabilityKey == "" {
		return shared.BookingView{}, errs.ErrAvailabilityKeyRequired
	}
	if err := in.Holder.Validate(); err != nil {
		return shared.BookingView{}, err
	}

	// Verification implicitly rejects tampered or secret-mismatched keys.
	claims, err := c.signer.Decode(in.AvailabilityKey)
	if err != nil {
		return shared.BookingView{}, errs.Mark(err, errs.ErrInvalidIntentToken)
	}

	created, err := c.supplier.CreateBooking(ctx, cred, createRequest(claims, in.Notes))
	if err != nil {
		return shared.BookingView{}, err
	}

	reference := in.Reference
	if reference == "" {
		// the supplier requires a reseller reference to search by later
		reference = uuid.NewString()
	}

	confirmed, err := c.supplier.ConfirmBooking(ctx, cred, created.UUID, octo.ConfirmBookingRequest{
		Contact: octo.Contact{
			FullName:     in.Holder.FullName(),
			EmailAddress: in.Holder.EmailAddress,
			PhoneNumber:  in.Holder.PhoneNumber,
			Locales:      in.Holder.Locales,
			Country:      in.Holder.Country,
		},
		ResellerReference: reference,
	})
	if err != nil {
		return shared.BookingView{}, err
	}

	// A confirmed remote booking whose product vanished is reported as an
	// error rather than returned partially filled.
	return c.enrich(ctx, cred, confirmed, claims.ProductID, claims.OptionID)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, cred credential.Credential, q booking.CancelQuery) (shared.BookingView, error) {
	if err := q.Validate(); err != nil {
		return shared.BookingView{}, err
	}

	cancelled, err := c.supplier.CancelBooking(ctx, cred, q.Identifier(), octo.CancelBookingRequest{Reason: q.Reason})
	if err != nil {
		return shared.BookingView{}, err
	}

	return c.enrich(ctx, cred, cancelled, cancelled.ProductID, cancelled.OptionID)
}

func (c *bookingCommandsImpl) enrich(ctx context.Context, cred credential.Credential, b octo.Booking, productID, optionID string) (shared.BookingView, error) {
	product, err := c.products.GetForBooking(ctx, cred, productID)
	if err != nil {
		return shared.BookingView{}, err
	}
	return c.translator.Booking(b, product, shared.FindOption(product, optionID))
}

// createRequest replays the decoded claims to the supplier. The token's
// issued-at and currency stay out of the create payload.
func createRequest(claims *intenttoken.Claims, notes string) octo.CreateBookingRequest {
	units := make([]octo.UnitQuantity, 0, len(claims.Units))
	for _, u := range claims.Units {
		units = append(units, octo.UnitQuantity{ID: u.ID, Quantity: u.Quantity})
	}
	return octo.CreateBookingRequest{
		ProductID:      claims.ProductID,
		OptionID:       claims.OptionID,
		AvailabilityID: claims.AvailabilityID,
		Units:          units,
		Notes:          notes,
	}
}
