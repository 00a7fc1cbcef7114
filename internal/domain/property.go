package domain

import "time"

// LengthOfStayDiscount grants a percentage off the accommodation subtotal
// once a stay reaches ThresholdNights.
type LengthOfStayDiscount struct {
	ThresholdNights int     `json:"threshold_nights" validate:"required,gt=0"`
	Percent         float64 `json:"percent" validate:"required,gt=0,lte=100"`
}

type PricingConfig struct {
	LengthOfStayDiscounts []LengthOfStayDiscount `json:"length_of_stay_discounts,omitempty"`
}

type Property struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title" validate:"required"`
	City               string        `json:"city,omitempty"`
	BaseOccupancy      int           `json:"base_occupancy" validate:"required,gte=1"`
	ExtraGuestFee      float64       `json:"extra_guest_fee" validate:"gte=0"`
	PricePerNight      float64       `json:"price_per_night" validate:"gte=0"`
	CleaningFee        float64       `json:"cleaning_fee" validate:"gte=0"`
	BaseCurrency       string        `json:"base_currency" validate:"required,len=3"`
	DefaultMinimumStay int           `json:"default_minimum_stay" validate:"gte=0"`
	PricingConfig      PricingConfig `json:"pricing_config"`
	IsActive           bool          `json:"is_active"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// MinimumStayOrDefault returns the property-level minimum stay, falling back
// to a single night when the field was never configured.
func (p *Property) MinimumStayOrDefault() int {
	if p.DefaultMinimumStay < 1 {
		return 1
	}
	return p.DefaultMinimumStay
}
