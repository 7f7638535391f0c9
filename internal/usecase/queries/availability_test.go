//go:build unit

package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"octo-connect/internal/domain/availability"
	"octo-connect/internal/domain/credential"
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/clock"
	"octo-connect/internal/pkg/errs"
	"octo-connect/internal/pkg/intenttoken"
	"octo-connect/internal/translate"
	"octo-connect/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSigner() *intenttoken.Signer {
	return intenttoken.NewSigner("secret", 6*time.Hour, clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))
}

func twoTripleQuery(t *testing.T) availability.Query {
	t.Helper()
	r, err := availability.NewDateRange(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	q, err := availability.NewQuery(
		[]string{"p1", "p2"},
		[]string{"o1", "o2"},
		[][]availability.UnitQuantity{
			{{UnitID: "adult", Quantity: 2}},
			{{UnitID: "child", Quantity: 1}},
		},
		r, "EUR",
	)
	require.NoError(t, err)
	return q
}

func TestAvailabilityQueries_Search(t *testing.T) {
	signer := testSigner()
	var mu sync.Mutex
	var seen []octo.AvailabilityRequest

	gw := &fakeGateway{
		availability: func(_ context.Context, _ credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error) {
			mu.Lock()
			seen = append(seen, req)
			mu.Unlock()

			rec := octo.Availability{
				ID:                 req.ProductID + "-slot",
				LocalDateTimeStart: "2026-09-01T10:00:00+02:00",
				LocalDateTimeEnd:   "2026-09-01T12:00:00+02:00",
				Available:          true,
				Status:             "AVAILABLE",
				Vacancies:          10,
			}
			if len(req.Units) > 0 {
				rec.Pricing = &octo.Price{Original: 2000, Retail: 2000, Net: 1800, Currency: "EUR"}
			} else {
				rec.UnitPricing = []octo.UnitPricing{
					{UnitID: "adult", Price: octo.Price{Original: 1000, Retail: 1000, Net: 900, Currency: "EUR"}},
				}
			}
			return []octo.Availability{rec}, nil
		},
	}
	q := queries.NewAvailabilityQueries(gw, translate.New(), signer, 3)

	results, err := q.Search(t.Context(), testCred, twoTripleQuery(t))
	require.NoError(t, err)
	require.Len(t, results, 2)

	// two sub-queries per triple, one with units and one without
	assert.Len(t, seen, 4)

	for i, productID := range []string{"p1", "p2"} {
		require.Len(t, results[i], 1)
		view := results[i][0]
		assert.Equal(t, productID+"-slot", view.AvailabilityID)
		assert.Equal(t, "2026-09-01T10:00:00+02:00", view.DateTimeStart)
		assert.True(t, view.Available)

		// total pricing from the with-units query, per-unit breakdown merged
		// in from the unitless one
		require.NotNil(t, view.Pricing)
		assert.Equal(t, int64(2000), view.Pricing.Retail)
		require.Len(t, view.UnitPricing, 1)
		assert.Equal(t, "adult", view.UnitPricing[0].UnitID)

		require.NotEmpty(t, view.Key)
		claims, decodeErr := signer.Decode(view.Key)
		require.NoError(t, decodeErr)
		assert.Equal(t, productID, claims.ProductID)
		assert.Equal(t, productID+"-slot", claims.AvailabilityID)
		assert.Equal(t, "EUR", claims.Currency)
	}
}

func TestAvailabilityQueries_Search_DateWindow(t *testing.T) {
	var mu sync.Mutex
	var seen []octo.AvailabilityRequest
	gw := &fakeGateway{
		availability: func(_ context.Context, _ credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error) {
			mu.Lock()
			seen = append(seen, req)
			mu.Unlock()
			return nil, nil
		},
	}
	q := queries.NewAvailabilityQueries(gw, translate.New(), testSigner(), 3)

	_, err := q.Search(t.Context(), testCred, twoTripleQuery(t))
	require.NoError(t, err)

	for _, req := range seen {
		assert.Equal(t, "2026-09-01", req.LocalDateStart)
		assert.Equal(t, "2026-09-07", req.LocalDateEnd)
	}
}

func TestAvailabilityQueries_Search_SupplierFailureFailsBatch(t *testing.T) {
	gw := &fakeGateway{
		availability: func(_ context.Context, _ credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error) {
			if req.ProductID == "p2" {
				return nil, errUnexpectedCall
			}
			return nil, nil
		},
	}
	q := queries.NewAvailabilityQueries(gw, translate.New(), testSigner(), 3)

	_, err := q.Search(t.Context(), testCred, twoTripleQuery(t))
	assert.ErrorIs(t, err, errUnexpectedCall)
}

func TestAvailabilityQueries_Search_ValidatesBeforeCalling(t *testing.T) {
	called := false
	gw := &fakeGateway{
		availability: func(_ context.Context, _ credential.Credential, _ octo.AvailabilityRequest) ([]octo.Availability, error) {
			called = true
			return nil, nil
		},
	}

	t.Run("nil signer", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(gw, translate.New(), nil, 3)
		_, err := q.Search(t.Context(), testCred, twoTripleQuery(t))
		assert.ErrorIs(t, err, errs.ErrSignerNotConfigured)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(gw, translate.New(), testSigner(), 3)
		bad := availability.Query{ProductIDs: []string{"p1"}, OptionIDs: []string{"o1", "o2"}}
		_, err := q.Search(t.Context(), testCred, bad)
		assert.ErrorIs(t, err, errs.ErrMismatchedQueryLengths)
	})

	assert.False(t, called)
}

func TestAvailabilityQueries_Calendar(t *testing.T) {
	var mu sync.Mutex
	var seen []octo.AvailabilityRequest
	gw := &fakeGateway{
		availabilityCalendar: func(_ context.Context, _ credential.Credential, req octo.AvailabilityRequest) ([]octo.Availability, error) {
			mu.Lock()
			seen = append(seen, req)
			mu.Unlock()
			return []octo.Availability{{
				ID:        req.ProductID + "-day",
				LocalDate: "2026-09-01",
				Available: true,
				Status:    "AVAILABLE",
				Vacancies: 4,
			}}, nil
		},
	}
	q := queries.NewAvailabilityQueries(gw, translate.New(), testSigner(), 3)

	results, err := q.Calendar(t.Context(), testCred, twoTripleQuery(t))
	require.NoError(t, err)
	require.Len(t, results, 2)

	// one calendar call per triple, always with units
	require.Len(t, seen, 2)
	for _, req := range seen {
		assert.NotEmpty(t, req.Units)
	}

	require.Len(t, results[0], 1)
	assert.Equal(t, "p1-day", results[0][0].AvailabilityID)
	assert.Equal(t, "2026-09-01", results[0][0].LocalDate)
	assert.Empty(t, results[0][0].Key, "calendar entries carry no booking key")
}
