package queries

import (
	"context"
	"net/url"

	"octo-connect/internal/domain/booking"
	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type BookingQueries interface {
	Search(ctx context.Context, cred credential.Credential, q booking.SearchQuery) ([]shared.BookingView, error)
}

type bookingQueriesImpl struct {
	supplier   shared.SupplierGateway
	translator shared.Translator
	products   ProductQueries
}

func NewBookingQueries(supplier shared.SupplierGateway, translator shared.Translator, products ProductQueries) BookingQueries {
	return &bookingQueriesImpl{
		supplier:   supplier,
		translator: translator,
		products:   products,
	}
}

func (b *bookingQueriesImpl) Search(ctx context.Context, cred credential.Credential, q booking.SearchQuery) ([]shared.BookingView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var raw []octo.Booking
	var err error
	if q.ByID() {
		raw = b.searchByID(ctx, cred, q.BookingID)
	} else {
		raw, err = b.supplier.ListBookings(ctx, cred, url.Values{
			"localDateStart": {q.TravelDateStart.Format(localDateLayout)},
			"localDateEnd":   {q.TravelDateEnd.Format(localDateLayout)},
		})
		if err != nil {
			return nil, err
		}
	}

	return b.enrichAll(ctx, cred, raw)
}

// searchByID issues the three lookup strategies in parallel: direct id,
// reseller reference, supplier reference. A failed strategy counts as
// "nothing found", never as a fatal error.
func (b *bookingQueriesImpl) searchByID(ctx context.Context, cred credential.Credential, id string) []octo.Booking {
	strategies := make([][]octo.Booking, 3)
	var g errgroup.Group
	g.Go(func() error {
		if found, err := b.supplier.Booking(ctx, cred, id); err == nil {
			strategies[0] = []octo.Booking{found}
		}
		return nil
	})
	g.Go(func() error {
		if found, err := b.supplier.ListBookings(ctx, cred, url.Values{"resellerReference": {id}}); err == nil {
			strategies[1] = found
		}
		return nil
	})
	g.Go(func() error {
		if found, err := b.supplier.ListBookings(ctx, cred, url.Values{"supplierReference": {id}}); err == nil {
			strategies[2] = found
		}
		return nil
	})
	_ = g.Wait()

	var flat []octo.Booking
	for _, s := range strategies {
		flat = append(flat, s...)
	}
	return flat
}

// enrichAll resolves product and option for every booking concurrently;
// each enrichment is an independent unit of work.
func (b *bookingQueriesImpl) enrichAll(ctx context.Context, cred credential.Credential, raw []octo.Booking) ([]shared.BookingView, error) {
	views := make([]shared.BookingView, len(raw))
	g, gctx := errgroup.WithContext(ctx)
	for i, rb := range raw {
		g.Go(func() error {
			product, err := b.products.GetForBooking(gctx, cred, rb.ProductID)
			if err != nil {
				return err
			}
			view, err := b.translator.Booking(rb, product, shared.FindOption(product, rb.OptionID))
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}
