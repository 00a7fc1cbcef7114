package quote

import (
	"strconv"
	"time"

	"stayquote/internal/domain"
)

const dateLayout = "2006-01-02"

type monthKey struct {
	Year  int
	Month time.Month
}

// monthsSpanned lists the distinct (year, month) pairs covered by the nights
// in [checkIn, checkOut).
func monthsSpanned(checkIn, checkOut time.Time) []monthKey {
	lastNight := checkOut.AddDate(0, 0, -1)

	var months []monthKey
	cur := time.Date(checkIn.Year(), checkIn.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(lastNight.Year(), lastNight.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		months = append(months, monthKey{Year: cur.Year(), Month: cur.Month()})
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

type night struct {
	day           domain.DayPrice
	guests        int
	baseOccupancy int
	extraGuestFee float64
}

// priceRule resolves a nightly price, or declines by returning false.
// Rules are evaluated top-down; order is the tie-break.
type priceRule func(night) (float64, bool)

// baseOccupancyPrice: stays within base occupancy always pay the day's base
// price, overrides and fees notwithstanding.
func baseOccupancyPrice(n night) (float64, bool) {
	if n.guests <= n.baseOccupancy {
		return n.day.BasePrice, true
	}
	return 0, false
}

// occupancyOverride: an exact per-guest-count price wins over the formula.
// Lookup uses the plain decimal form of the guest count; store keys written
// differently (e.g. zero-padded) will not match and fall through.
func occupancyOverride(n night) (float64, bool) {
	if len(n.day.Prices) == 0 {
		return 0, false
	}
	price, ok := n.day.Prices[strconv.Itoa(n.guests)]
	return price, ok
}

// extraGuestFormula: base price plus a linear fee per guest above base
// occupancy. Always matches.
func extraGuestFormula(n night) (float64, bool) {
	return n.day.BasePrice + float64(n.guests-n.baseOccupancy)*n.extraGuestFee, true
}

var priceRules = []priceRule{
	baseOccupancyPrice,
	occupancyOverride,
	extraGuestFormula,
}

func resolveNightPrice(n night) float64 {
	for _, rule := range priceRules {
		if price, ok := rule(n); ok {
			return price
		}
	}
	return n.day.BasePrice
}

type resolvedStay struct {
	// NightlyPrices maps ISO date to the resolved price for that night.
	NightlyPrices map[string]float64
	// MinimumStay is the binding minimum across the whole range: the maximum
	// of the property default and every night's own requirement.
	MinimumStay int
}

// resolveStay prices every night in [checkIn, checkIn+nights) from the
// already-fetched calendars. A night whose month calendar or day entry is
// missing fails with a DayPriceError for that date.
func resolveStay(p *domain.Property, calendars map[monthKey]*domain.PriceCalendar, checkIn time.Time, nights, guests int) (*resolvedStay, error) {
	out := &resolvedStay{
		NightlyPrices: make(map[string]float64, nights),
		MinimumStay:   p.MinimumStayOrDefault(),
	}

	for i := 0; i < nights; i++ {
		date := checkIn.AddDate(0, 0, i)

		cal := calendars[monthKey{Year: date.Year(), Month: date.Month()}]
		if cal == nil {
			return nil, &DayPriceError{Date: date}
		}
		day, ok := cal.Day(date.Day())
		if !ok {
			return nil, &DayPriceError{Date: date}
		}

		out.NightlyPrices[date.Format(dateLayout)] = resolveNightPrice(night{
			day:           day,
			guests:        guests,
			baseOccupancy: p.BaseOccupancy,
			extraGuestFee: p.ExtraGuestFee,
		})

		if day.MinimumStay > out.MinimumStay {
			out.MinimumStay = day.MinimumStay
		}
	}

	return out, nil
}
