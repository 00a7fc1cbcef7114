package property

import "stayquote/internal/domain"

type UpsertPropertyRequest struct {
	ID                 string               `json:"id"`
	Title              string               `json:"title" validate:"required"`
	City               string               `json:"city"`
	BaseOccupancy      int                  `json:"base_occupancy" validate:"required,gte=1"`
	ExtraGuestFee      float64              `json:"extra_guest_fee" validate:"gte=0"`
	PricePerNight      float64              `json:"price_per_night" validate:"gte=0"`
	CleaningFee        float64              `json:"cleaning_fee" validate:"gte=0"`
	BaseCurrency       string               `json:"base_currency" validate:"required,len=3"`
	DefaultMinimumStay int                  `json:"default_minimum_stay" validate:"gte=0"`
	PricingConfig      domain.PricingConfig `json:"pricing_config"`
}

type UpsertCalendarRequest struct {
	Year  int                        `json:"year" validate:"required,gte=2000"`
	Month int                        `json:"month" validate:"required,gte=1,lte=12"`
	Days  map[string]domain.DayPrice `json:"days" validate:"required"`
}
