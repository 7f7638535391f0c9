package request

import (
	"octo-connect/internal/domain/booking"
	"octo-connect/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Credential Credential           `json:"credential" binding:"required"`
	Payload    CreateBookingPayload `json:"payload" binding:"required"`
}

type CreateBookingPayload struct {
	AvailabilityKey string        `json:"availabilityKey"`
	Holder          HolderPayload `json:"holder"`
	Notes           string        `json:"notes"`
	Reference       string        `json:"reference"`
}

type HolderPayload struct {
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	EmailAddress string   `json:"emailAddress"`
	PhoneNumber  string   `json:"phoneNumber"`
	Locales      []string `json:"locales"`
	Country      string   `json:"country"`
}

func (p CreateBookingPayload) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		AvailabilityKey: p.AvailabilityKey,
		Holder: booking.Holder{
			Name:         p.Holder.Name,
			Surname:      p.Holder.Surname,
			EmailAddress: p.Holder.EmailAddress,
			PhoneNumber:  p.Holder.PhoneNumber,
			Locales:      p.Holder.Locales,
			Country:      p.Holder.Country,
		},
		Notes:     p.Notes,
		Reference: p.Reference,
	}
}

type CancelBookingRequest struct {
	Credential Credential           `json:"credential" binding:"required"`
	Payload    CancelBookingPayload `json:"payload" binding:"required"`
}

type CancelBookingPayload struct {
	BookingID string `json:"bookingId"`
	ID        string `json:"id"`
	Reason    string `json:"reason"`
}

func (p CancelBookingPayload) ToDomain() booking.CancelQuery {
	return booking.CancelQuery{
		BookingID: p.BookingID,
		ID:        p.ID,
		Reason:    p.Reason,
	}
}

type SearchBookingRequest struct {
	Credential Credential           `json:"credential" binding:"required"`
	Payload    SearchBookingPayload `json:"payload" binding:"required"`
}

type SearchBookingPayload struct {
	BookingID       string `json:"bookingId"`
	TravelDateStart string `json:"travelDateStart"`
	TravelDateEnd   string `json:"travelDateEnd"`
	DateFormat      string `json:"dateFormat"`
}

func (p SearchBookingPayload) ToDomain() (booking.SearchQuery, error) {
	if p.BookingID != "" {
		return booking.SearchQuery{BookingID: p.BookingID}, nil
	}
	if p.TravelDateStart == "" && p.TravelDateEnd == "" {
		// let the usecase report the missing criteria
		return booking.SearchQuery{}, nil
	}
	r, err := parseDateRange(p.TravelDateStart, p.TravelDateEnd, p.DateFormat)
	if err != nil {
		return booking.SearchQuery{}, err
	}
	return booking.SearchQuery{
		TravelDateStart: r.Start,
		TravelDateEnd:   r.End,
	}, nil
}
