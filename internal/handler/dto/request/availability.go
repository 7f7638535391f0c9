package request

import (
	"time"

	"octo-connect/internal/domain/availability"
	"octo-connect/internal/pkg/errs"
)

// defaultDateLayout is the Go reference layout applied when the host does
// not send its own.
const defaultDateLayout = "2006-01-02"

type SearchAvailabilityRequest struct {
	Credential Credential          `json:"credential" binding:"required"`
	Payload    AvailabilityPayload `json:"payload" binding:"required"`
}

type AvailabilityPayload struct {
	ProductIDs []string         `json:"productIds" binding:"required"`
	OptionIDs  []string         `json:"optionIds" binding:"required"`
	Units      [][]UnitQuantity `json:"units" binding:"required"`
	StartDate  string           `json:"startDate" binding:"required"`
	EndDate    string           `json:"endDate" binding:"required"`
	DateFormat string           `json:"dateFormat"`
	Currency   string           `json:"currency"`
}

type UnitQuantity struct {
	UnitID   string `json:"unitId"`
	Quantity int    `json:"quantity"`
}

func (p AvailabilityPayload) ToDomain() (availability.Query, error) {
	r, err := parseDateRange(p.StartDate, p.EndDate, p.DateFormat)
	if err != nil {
		return availability.Query{}, err
	}

	units := make([][]availability.UnitQuantity, len(p.Units))
	for i, set := range p.Units {
		units[i] = make([]availability.UnitQuantity, 0, len(set))
		for _, u := range set {
			units[i] = append(units[i], availability.UnitQuantity{UnitID: u.UnitID, Quantity: u.Quantity})
		}
	}

	return availability.NewQuery(p.ProductIDs, p.OptionIDs, units, r, p.Currency)
}

func parseDateRange(start, end, layout string) (availability.DateRange, error) {
	if layout == "" {
		layout = defaultDateLayout
	}
	startTime, err := time.Parse(layout, start)
	if err != nil {
		return availability.DateRange{}, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	endTime, err := time.Parse(layout, end)
	if err != nil {
		return availability.DateRange{}, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	return availability.NewDateRange(startTime, endTime)
}
