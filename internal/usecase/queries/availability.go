package queries

import (
	"context"

	"octo-connect/internal/domain/availability"
	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/errs"
	"octo-connect/internal/pkg/intenttoken"
	"octo-connect/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// localDateLayout is the supplier's expected date representation.
const localDateLayout = "2006-01-02"

type AvailabilityQueries interface {
	// Search returns one inner slice per input triple, index-aligned with
	// the query. Every returned record carries a signed booking-intent key.
	Search(ctx context.Context, cred credential.Credential, q availability.Query) ([][]shared.AvailabilityView, error)
	// Calendar returns per-day availability totals, index-aligned the same
	// way. Calendar entries carry no intent key.
	Calendar(ctx context.Context, cred credential.Credential, q availability.Query) ([][]shared.AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	supplier    shared.SupplierGateway
	translator  shared.Translator
	signer      *intenttoken.Signer
	concurrency int
}

func NewAvailabilityQueries(
	supplier shared.SupplierGateway,
	translator shared.Translator,
	signer *intenttoken.Signer,
	concurrency int,
) AvailabilityQueries {
	if concurrency <= 0 {
		concurrency = 3
	}
	return &availabilityQueriesImpl{
		supplier:    supplier,
		translator:  translator,
		signer:      signer,
		concurrency: concurrency,
	}
}

func (a *availabilityQueriesImpl) Search(ctx context.Context, cred credential.Credential, q availability.Query) ([][]shared.AvailabilityView, error) {
	if err := a.validate(q); err != nil {
		return nil, err
	}

	results := make([][]shared.AvailabilityView, q.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i := range q.ProductIDs {
		g.Go(func() error {
			records, err := a.fetchMerged(gctx, cred, q, i)
			if err != nil {
				return err
			}
			vars := shared.AvailabilityVars{
				ProductID: q.ProductIDs[i],
				OptionID:  q.OptionIDs[i],
				Currency:  q.Currency,
				Units:     q.Units[i],
				Signer:    a.signer,
			}
			views := make([]shared.AvailabilityView, 0, len(records))
			for _, rec := range records {
				view, translateErr := a.translator.Availability(rec, vars)
				if translateErr != nil {
					return translateErr
				}
				views = append(views, view)
			}
			results[i] = views
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *availabilityQueriesImpl) Calendar(ctx context.Context, cred credential.Credential, q availability.Query) ([][]shared.AvailabilityView, error) {
	if err := a.validate(q); err != nil {
		return nil, err
	}

	results := make([][]shared.AvailabilityView, q.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i := range q.ProductIDs {
		g.Go(func() error {
			// units are required here to get the total pricing per day
			records, err := a.supplier.AvailabilityCalendar(gctx, cred, a.request(q, i, true))
			if err != nil {
				return err
			}
			views := make([]shared.AvailabilityView, 0, len(records))
			for _, rec := range records {
				view, translateErr := a.translator.Calendar(rec)
				if translateErr != nil {
					return translateErr
				}
				views = append(views, view)
			}
			results[i] = views
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *availabilityQueriesImpl) validate(q availability.Query) error {
	if a.signer == nil {
		return errs.ErrSignerNotConfigured
	}
	return q.Validate()
}

// fetchMerged issues the two sub-queries for one triple in parallel: one
// with unit quantities for the bookable totals, one without to obtain the
// per-unit pricing breakdown, merged back by the supplier's record id.
func (a *availabilityQueriesImpl) fetchMerged(ctx context.Context, cred credential.Credential, q availability.Query, i int) ([]octo.Availability, error) {
	var withUnits, unitless []octo.Availability
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		withUnits, err = a.supplier.Availability(gctx, cred, a.request(q, i, true))
		return err
	})
	g.Go(func() error {
		var err error
		unitless, err = a.supplier.Availability(gctx, cred, a.request(q, i, false))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mergeUnitPricing(withUnits, unitless), nil
}

func (a *availabilityQueriesImpl) request(q availability.Query, i int, withUnits bool) octo.AvailabilityRequest {
	req := octo.AvailabilityRequest{
		ProductID:      q.ProductIDs[i],
		OptionID:       q.OptionIDs[i],
		LocalDateStart: q.Range.Start.Format(localDateLayout),
		LocalDateEnd:   q.Range.End.Format(localDateLayout),
	}
	if withUnits {
		req.Units = make([]octo.UnitQuantity, 0, len(q.Units[i]))
		for _, u := range q.Units[i] {
			req.Units = append(req.Units, octo.UnitQuantity{ID: u.UnitID, Quantity: u.Quantity})
		}
	}
	return req
}

// mergeUnitPricing copies the per-unit pricing fields from the unitless
// response into the matching with-units records. Records with no match pass
// through unmodified.
func mergeUnitPricing(withUnits, unitless []octo.Availability) []octo.Availability {
	byID := make(map[string][]octo.UnitPricing, len(unitless))
	for _, rec := range unitless {
		byID[rec.ID] = rec.UnitPricing
	}
	for i, rec := range withUnits {
		if pricing, ok := byID[rec.ID]; ok {
			withUnits[i].UnitPricing = pricing
		}
	}
	return withUnits
}
