package booking

import (
	"strings"
	"time"

	"octo-connect/internal/pkg/errs"
)

// Holder is the person the booking is made for.
type Holder struct {
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	EmailAddress string   `json:"emailAddress"`
	PhoneNumber  string   `json:"phoneNumber"`
	Locales      []string `json:"locales"`
	Country      string   `json:"country"`
}

func (h Holder) Validate() error {
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Surname) == "" {
		return errs.ErrHolderNameRequired
	}
	return nil
}

func (h Holder) FullName() string {
	return h.Name + " " + h.Surname
}

// CancelQuery identifies a booking to cancel. The host may send either its
// own bookingId alias or the supplier id; one of the two is required.
type CancelQuery struct {
	BookingID string
	ID        string
	Reason    string
}

func (q CancelQuery) Validate() error {
	if q.Identifier() == "" {
		return errs.ErrBookingIDRequired
	}
	return nil
}

func (q CancelQuery) Identifier() string {
	if q.BookingID != "" {
		return q.BookingID
	}
	return q.ID
}

// SearchQuery selects bookings either by a single identifier (matched
// against the supplier id, the reseller reference and the supplier
// reference) or by a complete travel-date range.
type SearchQuery struct {
	BookingID       string
	TravelDateStart time.Time
	TravelDateEnd   time.Time
}

func (q SearchQuery) Validate() error {
	if q.BookingID != "" {
		return nil
	}
	if q.TravelDateStart.IsZero() || q.TravelDateEnd.IsZero() {
		return errs.ErrBookingSearchCriteria
	}
	return nil
}

func (q SearchQuery) ByID() bool {
	return q.BookingID != ""
}
