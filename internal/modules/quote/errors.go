package quote

import (
	"errors"
	"time"
)

var (
	ErrMissingParameter     = errors.New("missing required parameter")
	ErrInvalidGuests        = errors.New("guests must be a positive integer")
	ErrInvalidDate          = errors.New("dates must be in YYYY-MM-DD format")
	ErrPastCheckIn          = errors.New("check-in date is in the past")
	ErrInvalidDateRange     = errors.New("check-out must be after check-in")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrPriceDataUnavailable = errors.New("no price calendar for the requested range")
)

// DayPriceError reports a single night missing from an otherwise present
// calendar, as opposed to ErrPriceDataUnavailable which covers a whole
// missing month.
type DayPriceError struct {
	Date time.Time
}

func (e *DayPriceError) Error() string {
	return "no price data for " + e.Date.Format("2006-01-02")
}
