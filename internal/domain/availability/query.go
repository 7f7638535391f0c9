package availability

import (
	"time"

	"octo-connect/internal/pkg/errs"
)

// UnitQuantity is one unit selection inside an availability query, e.g.
// two adults for a given unit id.
type UnitQuantity struct {
	UnitID   string `json:"unitId"`
	Quantity int    `json:"quantity"`
}

// DateRange is the travel window of a query, inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return DateRange{}, errs.ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Query is a validated availability fan-out request. The three slices are
// index-aligned: position i describes one (product, option, unit-set) triple.
type Query struct {
	ProductIDs []string
	OptionIDs  []string
	Units      [][]UnitQuantity
	Range      DateRange
	Currency   string
}

func NewQuery(productIDs, optionIDs []string, units [][]UnitQuantity, r DateRange, currency string) (Query, error) {
	q := Query{
		ProductIDs: productIDs,
		OptionIDs:  optionIDs,
		Units:      units,
		Range:      r,
		Currency:   currency,
	}
	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

func (q Query) Validate() error {
	if len(q.ProductIDs) != len(q.OptionIDs) || len(q.OptionIDs) != len(q.Units) {
		return errs.ErrMismatchedQueryLengths
	}
	for _, id := range q.ProductIDs {
		if id == "" {
			return errs.ErrInvalidProductID
		}
	}
	for _, id := range q.OptionIDs {
		if id == "" {
			return errs.ErrInvalidOptionID
		}
	}
	return nil
}

func (q Query) Len() int {
	return len(q.ProductIDs)
}
