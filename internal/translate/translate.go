// Package translate is the default field-mapping implementation from
// supplier wire payloads to host views. It satisfies shared.Translator; a
// host can inject a different mapping without touching the usecase layers.
package translate

import (
	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/errs"
	"octo-connect/internal/pkg/intenttoken"
	"octo-connect/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type OctoTranslator struct{}

func New() *OctoTranslator {
	return &OctoTranslator{}
}

func (t *OctoTranslator) Product(p octo.Product) (shared.ProductView, error) {
	view := shared.ProductView{
		ProductID:           p.ID,
		ProductName:         p.InternalName,
		Reference:           p.Reference,
		Locale:              p.Locale,
		TimeZone:            p.TimeZone,
		AvailableCurrencies: p.AvailableCurrencies,
		DefaultCurrency:     p.DefaultCurrency,
		Options:             make([]shared.OptionView, 0, len(p.Options)),
	}
	for _, o := range p.Options {
		option := shared.OptionView{
			OptionID:   o.ID,
			OptionName: o.InternalName,
			Default:    o.Default,
			Units:      make([]shared.UnitView, 0, len(o.Units)),
		}
		for _, u := range o.Units {
			unit := shared.UnitView{
				UnitID:   u.ID,
				UnitName: u.InternalName,
				Type:     u.Type,
			}
			if err := copier.Copy(&unit.Pricing, u.Pricing); err != nil {
				return shared.ProductView{}, errs.Wrap(err, "failed to map unit pricing")
			}
			option.Units = append(option.Units, unit)
		}
		view.Options = append(view.Options, option)
	}
	return view, nil
}

// Availability translates one availability record and mints the
// booking-intent token into its key, binding the record to the triple it
// was queried for.
func (t *OctoTranslator) Availability(a octo.Availability, vars shared.AvailabilityVars) (shared.AvailabilityView, error) {
	if vars.Signer == nil {
		return shared.AvailabilityView{}, errs.ErrSignerNotConfigured
	}

	view, err := t.Calendar(a)
	if err != nil {
		return shared.AvailabilityView{}, err
	}

	units := make([]intenttoken.Unit, 0, len(vars.Units))
	for _, u := range vars.Units {
		units = append(units, intenttoken.Unit{ID: u.UnitID, Quantity: u.Quantity})
	}
	key, err := vars.Signer.Encode(intenttoken.Claims{
		ProductID:      vars.ProductID,
		OptionID:       vars.OptionID,
		AvailabilityID: a.ID,
		Units:          units,
		Currency:       vars.Currency,
	})
	if err != nil {
		return shared.AvailabilityView{}, errs.Wrap(err, "failed to sign availability key")
	}
	view.Key = key
	return view, nil
}

// Calendar translates an availability record without minting a token;
// calendar entries are informational, not directly bookable.
func (t *OctoTranslator) Calendar(a octo.Availability) (shared.AvailabilityView, error) {
	view := shared.AvailabilityView{
		AvailabilityID: a.ID,
		LocalDate:      a.LocalDate,
		DateTimeStart:  a.LocalDateTimeStart,
		DateTimeEnd:    a.LocalDateTimeEnd,
		AllDay:         a.AllDay,
		Available:      a.Available,
		Status:         a.Status,
		Vacancies:      a.Vacancies,
		Pricing:        mapPrice(a.Pricing),
	}
	for _, up := range a.UnitPricing {
		view.UnitPricing = append(view.UnitPricing, shared.UnitPricingView{
			UnitID:   up.UnitID,
			Original: up.Original,
			Retail:   up.Retail,
			Net:      up.Net,
			Currency: up.Currency,
		})
	}
	return view, nil
}

func (t *OctoTranslator) Booking(b octo.Booking, product shared.ProductView, option shared.OptionView) (shared.BookingView, error) {
	view := shared.BookingView{
		ID:                bookingID(b),
		SupplierBookingID: b.SupplierReference,
		Status:            b.Status,
		Cancellable:       b.Cancellable,
		ResellerReference: b.ResellerReference,
		ProductID:         product.ProductID,
		ProductName:       product.ProductName,
		OptionID:          option.OptionID,
		OptionName:        option.OptionName,
		Notes:             b.Notes,
		Price:             mapPrice(b.Pricing),
	}
	if b.Availability != nil {
		view.DateTimeStart = b.Availability.LocalDateTimeStart
		view.DateTimeEnd = b.Availability.LocalDateTimeEnd
	} else {
		view.DateTimeStart = b.LocalDateTimeStart
		view.DateTimeEnd = b.LocalDateTimeEnd
	}
	if b.Contact != nil {
		view.HolderName = b.Contact.FullName
		view.HolderEmail = b.Contact.EmailAddress
	}
	return view, nil
}

func bookingID(b octo.Booking) string {
	if b.UUID != "" {
		return b.UUID
	}
	return b.ID
}

func mapPrice(p *octo.Price) *shared.PricingView {
	if p == nil {
		return nil
	}
	return &shared.PricingView{
		Original: p.Original,
		Retail:   p.Retail,
		Net:      p.Net,
		Currency: p.Currency,
	}
}
