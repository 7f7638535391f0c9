package octo

// Wire types for the supplier's REST API. Fields not consumed by the
// connector are carried through untouched where the host needs them.

type Product struct {
	ID                  string   `json:"id"`
	InternalName        string   `json:"internalName"`
	Reference           string   `json:"reference"`
	Locale              string   `json:"locale"`
	TimeZone            string   `json:"timeZone"`
	Instant             bool     `json:"instantConfirmation"`
	AvailableCurrencies []string `json:"availableCurrencies"`
	DefaultCurrency     string   `json:"defaultCurrency"`
	Options             []Option `json:"options"`
}

type Option struct {
	ID           string `json:"id"`
	Default      bool   `json:"default"`
	InternalName string `json:"internalName"`
	Reference    string `json:"reference"`
	Units        []Unit `json:"units"`
}

type Unit struct {
	ID           string   `json:"id"`
	InternalName string   `json:"internalName"`
	Reference    string   `json:"reference"`
	Type         string   `json:"type"`
	Pricing      []Price  `json:"pricingFrom"`
	Restrictions *UnitAge `json:"restrictions"`
}

type UnitAge struct {
	MinAge int `json:"minAge"`
	MaxAge int `json:"maxAge"`
}

type Price struct {
	Original      int64  `json:"original"`
	Retail        int64  `json:"retail"`
	Net           int64  `json:"net"`
	Currency      string `json:"currency"`
	IncludedTaxes []Tax  `json:"includedTaxes"`
}

type Tax struct {
	Name     string `json:"name"`
	Original int64  `json:"original"`
	Retail   int64  `json:"retail"`
}

// UnitQuantity is the unit selection shape the supplier expects on
// availability and booking requests.
type UnitQuantity struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type AvailabilityRequest struct {
	ProductID      string         `json:"productId"`
	OptionID       string         `json:"optionId"`
	LocalDateStart string         `json:"localDateStart"`
	LocalDateEnd   string         `json:"localDateEnd"`
	Units          []UnitQuantity `json:"units,omitempty"`
}

type Availability struct {
	ID                 string        `json:"id"`
	LocalDate          string        `json:"localDate,omitempty"`
	LocalDateTimeStart string        `json:"localDateTimeStart"`
	LocalDateTimeEnd   string        `json:"localDateTimeEnd"`
	AllDay             bool          `json:"allDay"`
	Available          bool          `json:"available"`
	Status             string        `json:"status"`
	Vacancies          int           `json:"vacancies"`
	Capacity           int           `json:"capacity"`
	MaxUnits           int           `json:"maxUnits"`
	UTCCutoffAt        string        `json:"utcCutoffAt"`
	Pricing            *Price        `json:"pricing"`
	UnitPricing        []UnitPricing `json:"unitPricing"`
}

type UnitPricing struct {
	UnitID string `json:"unitId"`
	Price
}

type CreateBookingRequest struct {
	ProductID      string         `json:"productId"`
	OptionID       string         `json:"optionId"`
	AvailabilityID string         `json:"availabilityId"`
	Units          []UnitQuantity `json:"units"`
	Notes          string         `json:"notes,omitempty"`
}

type ConfirmBookingRequest struct {
	Contact           Contact `json:"contact"`
	ResellerReference string  `json:"resellerReference,omitempty"`
}

type Contact struct {
	FullName     string   `json:"fullName"`
	EmailAddress string   `json:"emailAddress"`
	PhoneNumber  string   `json:"phoneNumber"`
	Locales      []string `json:"locales"`
	Country      string   `json:"country"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

type Booking struct {
	ID                 string        `json:"id"`
	UUID               string        `json:"uuid"`
	Status             string        `json:"status"`
	TestMode           bool          `json:"testMode"`
	ProductID          string        `json:"productId"`
	OptionID           string        `json:"optionId"`
	ResellerReference  string        `json:"resellerReference"`
	SupplierReference  string        `json:"supplierReference"`
	Cancellable        bool          `json:"cancellable"`
	CancelRequested    bool          `json:"cancelRequested"`
	UTCCreatedAt       string        `json:"utcCreatedAt"`
	UTCConfirmedAt     string        `json:"utcConfirmedAt"`
	LocalDateTimeStart string        `json:"localDateTimeStart"`
	LocalDateTimeEnd   string        `json:"localDateTimeEnd"`
	Availability       *Availability `json:"availability"`
	Contact            *Contact      `json:"contact"`
	Notes              string        `json:"notes"`
	UnitItems          []UnitItem    `json:"unitItems"`
	Pricing            *Price        `json:"pricing"`
}

type UnitItem struct {
	UUID   string `json:"uuid"`
	UnitID string `json:"unitId"`
	Status string `json:"status"`
}

// apiError is the supplier's application-level error body.
type apiError struct {
	Code    string `json:"error"`
	Message string `json:"errorMessage"`
}
