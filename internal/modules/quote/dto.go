package quote

// QuoteRequest carries the raw request fields. Guests stays a string until
// validation so an absent parameter is distinguishable from a malformed one.
type QuoteRequest struct {
	PropertyID string
	CheckIn    string
	CheckOut   string
	Guests     string
}

const (
	ReasonUnavailableDates = "unavailable_dates"
	ReasonMinimumStay      = "minimum_stay"
)

type Meta struct {
	Source string `json:"source"`
}

type PricingPayload struct {
	Subtotal           float64            `json:"subtotal"`
	Discount           float64            `json:"discount"`
	DiscountPercent    float64            `json:"discount_percent,omitempty"`
	AccommodationTotal float64            `json:"accommodation_total"`
	CleaningFee        float64            `json:"cleaning_fee"`
	Total              float64            `json:"total"`
	NumberOfNights     int                `json:"number_of_nights"`
	DailyRates         map[string]float64 `json:"daily_rates"`
	Currency           string             `json:"currency"`
}

// Quote is one of three shapes: unavailable dates, minimum-stay violation or
// a priced stay. Negative outcomes are valid business answers, not errors.
type Quote struct {
	Available        bool            `json:"available"`
	Reason           string          `json:"reason,omitempty"`
	UnavailableDates []string        `json:"unavailable_dates,omitempty"`
	MinimumStay      int             `json:"minimum_stay,omitempty"`
	RequiredNights   int             `json:"required_nights,omitempty"`
	Pricing          *PricingPayload `json:"pricing,omitempty"`
	Meta             Meta            `json:"meta"`
}
