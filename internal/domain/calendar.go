package domain

import (
	"strconv"
	"time"
)

// DayPrice is the pricing record for one calendar day. Prices holds optional
// per-occupancy overrides keyed by the guest count in decimal string form
// ("3" -> 150). MinimumStay of 0 means the day imposes no requirement of its
// own.
type DayPrice struct {
	BasePrice   float64            `json:"base_price"`
	Prices      map[string]float64 `json:"prices,omitempty"`
	MinimumStay int                `json:"minimum_stay,omitempty"`
}

// PriceCalendar holds one month of day-level pricing for a property.
// Days is keyed by day of month without leading zeros ("1".."31").
type PriceCalendar struct {
	PropertyID string              `json:"property_id"`
	Year       int                 `json:"year"`
	Month      time.Month          `json:"month"`
	Days       map[string]DayPrice `json:"days"`
}

// Day looks up the pricing record for a day of month.
func (c *PriceCalendar) Day(dayOfMonth int) (DayPrice, bool) {
	dp, ok := c.Days[strconv.Itoa(dayOfMonth)]
	return dp, ok
}
