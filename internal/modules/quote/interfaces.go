package quote

import (
	"context"
	"time"

	"stayquote/internal/domain"
	"stayquote/internal/pkg/pricing"
)

// PropertyRepository loads property profiles. GetByID returns (nil, nil)
// when no property exists for the id.
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
}

// CalendarRepository loads month-granular price calendars. GetMonth returns
// (nil, nil) when the month has no calendar.
type CalendarRepository interface {
	GetMonth(ctx context.Context, propertyID string, year int, month time.Month) (*domain.PriceCalendar, error)
}

// AvailabilityChecker answers whether a date range is fully free, with the
// blocked dates and a provenance tag when it is not.
type AvailabilityChecker interface {
	CheckRange(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error)
}

// BookingAggregator turns the per-night price map into a booking total.
// The service trusts its output verbatim.
type BookingAggregator interface {
	Aggregate(nightly map[string]float64, cleaningFee float64, discounts []domain.LengthOfStayDiscount) pricing.Result
}
