// Package shared holds the host-facing view types produced by translation
// and the ports the usecase layers depend on.
package shared

type ProductView struct {
	ProductID           string       `json:"productId"`
	ProductName         string       `json:"productName"`
	Reference           string       `json:"reference,omitempty"`
	Locale              string       `json:"locale,omitempty"`
	TimeZone            string       `json:"timeZone,omitempty"`
	AvailableCurrencies []string     `json:"availableCurrencies,omitempty"`
	DefaultCurrency     string       `json:"defaultCurrency,omitempty"`
	Options             []OptionView `json:"options"`
}

type OptionView struct {
	OptionID   string     `json:"optionId"`
	OptionName string     `json:"optionName"`
	Default    bool       `json:"default,omitempty"`
	Units      []UnitView `json:"units"`
}

type UnitView struct {
	UnitID   string        `json:"unitId"`
	UnitName string        `json:"unitName"`
	Type     string        `json:"type,omitempty"`
	Pricing  []PricingView `json:"pricing,omitempty"`
}

type PricingView struct {
	Original int64  `json:"original"`
	Retail   int64  `json:"retail"`
	Net      int64  `json:"net"`
	Currency string `json:"currency"`
}

// AvailabilityView is one bookable (or calendar) slot. Key carries the
// signed booking-intent token; it is empty for calendar entries, which are
// informational only.
type AvailabilityView struct {
	Key            string            `json:"key,omitempty"`
	AvailabilityID string            `json:"availabilityId"`
	LocalDate      string            `json:"localDate,omitempty"`
	DateTimeStart  string            `json:"dateTimeStart"`
	DateTimeEnd    string            `json:"dateTimeEnd"`
	AllDay         bool              `json:"allDay"`
	Available      bool              `json:"available"`
	Status         string            `json:"status,omitempty"`
	Vacancies      int               `json:"vacancies"`
	Pricing        *PricingView      `json:"pricing,omitempty"`
	UnitPricing    []UnitPricingView `json:"unitPricing,omitempty"`
}

type UnitPricingView struct {
	UnitID   string `json:"unitId"`
	Original int64  `json:"original"`
	Retail   int64  `json:"retail"`
	Net      int64  `json:"net"`
	Currency string `json:"currency"`
}

type BookingView struct {
	ID                string       `json:"id"`
	SupplierBookingID string       `json:"supplierBookingId"`
	Status            string       `json:"status"`
	Cancellable       bool         `json:"cancellable"`
	ResellerReference string       `json:"resellerReference,omitempty"`
	ProductID         string       `json:"productId"`
	ProductName       string       `json:"productName"`
	OptionID          string       `json:"optionId"`
	OptionName        string       `json:"optionName"`
	DateTimeStart     string       `json:"dateTimeStart,omitempty"`
	DateTimeEnd       string       `json:"dateTimeEnd,omitempty"`
	HolderName        string       `json:"holderName,omitempty"`
	HolderEmail       string       `json:"holderEmail,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	Price             *PricingView `json:"price,omitempty"`
}

// QuoteView is intentionally empty: quoting is not implemented by the
// supplier integration and the stub result makes that explicit.
type QuoteView struct{}
