package quote

import (
	"testing"
	"time"

	"stayquote/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveNightPrice_BaseOccupancyIgnoresOverrides(t *testing.T) {
	price := resolveNightPrice(night{
		day: domain.DayPrice{
			BasePrice: 100,
			Prices:    map[string]float64{"2": 250},
		},
		guests:        2,
		baseOccupancy: 2,
		extraGuestFee: 10,
	})

	assert.Equal(t, 100.0, price)
}

func TestResolveNightPrice_ExactOverrideBeatsFormula(t *testing.T) {
	price := resolveNightPrice(night{
		day: domain.DayPrice{
			BasePrice: 100,
			Prices:    map[string]float64{"4": 150},
		},
		guests:        4,
		baseOccupancy: 2,
		extraGuestFee: 10, // formula would give 120
	})

	assert.Equal(t, 150.0, price)
}

func TestResolveNightPrice_FormulaWhenNoOverride(t *testing.T) {
	price := resolveNightPrice(night{
		day:           domain.DayPrice{BasePrice: 100},
		guests:        5,
		baseOccupancy: 2,
		extraGuestFee: 10,
	})

	assert.Equal(t, 130.0, price)
}

func TestResolveNightPrice_ZeroPaddedOverrideKeyFallsThrough(t *testing.T) {
	// A store writing "04" instead of "4" never matches the exact lookup,
	// so the formula branch takes over.
	price := resolveNightPrice(night{
		day: domain.DayPrice{
			BasePrice: 100,
			Prices:    map[string]float64{"04": 150},
		},
		guests:        4,
		baseOccupancy: 2,
		extraGuestFee: 10,
	})

	assert.Equal(t, 120.0, price)
}

func TestResolveStay_MinimumStayIsMaxAcrossNights(t *testing.T) {
	p := &domain.Property{BaseOccupancy: 2, DefaultMinimumStay: 1}
	checkIn := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	calendars := map[monthKey]*domain.PriceCalendar{
		{Year: 2027, Month: time.March}: {
			PropertyID: "prop-1",
			Year:       2027,
			Month:      time.March,
			Days: map[string]domain.DayPrice{
				"1": {BasePrice: 100, MinimumStay: 2},
				"2": {BasePrice: 100, MinimumStay: 4},
				"3": {BasePrice: 100},
			},
		},
	}

	resolved, err := resolveStay(p, calendars, checkIn, 3, 2)

	assert.NoError(t, err)
	assert.Equal(t, 4, resolved.MinimumStay)
	assert.Len(t, resolved.NightlyPrices, 3)
}

func TestResolveStay_DefaultMinimumStayNeverLowered(t *testing.T) {
	// A per-day value below the property default does not relax the
	// requirement; the default is the floor.
	p := &domain.Property{BaseOccupancy: 2, DefaultMinimumStay: 5}
	checkIn := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	calendars := map[monthKey]*domain.PriceCalendar{
		{Year: 2027, Month: time.March}: {
			Days: map[string]domain.DayPrice{
				"1": {BasePrice: 100, MinimumStay: 2},
				"2": {BasePrice: 100},
			},
		},
	}

	resolved, err := resolveStay(p, calendars, checkIn, 2, 2)

	assert.NoError(t, err)
	assert.Equal(t, 5, resolved.MinimumStay)
}

func TestResolveStay_UnsetDefaultSeedsAtOne(t *testing.T) {
	p := &domain.Property{BaseOccupancy: 2}
	checkIn := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	calendars := map[monthKey]*domain.PriceCalendar{
		{Year: 2027, Month: time.March}: {
			Days: map[string]domain.DayPrice{"1": {BasePrice: 100}},
		},
	}

	resolved, err := resolveStay(p, calendars, checkIn, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, 1, resolved.MinimumStay)
}

func TestResolveStay_MissingDayFails(t *testing.T) {
	p := &domain.Property{BaseOccupancy: 2, DefaultMinimumStay: 1}
	checkIn := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	calendars := map[monthKey]*domain.PriceCalendar{
		{Year: 2027, Month: time.March}: {
			Days: map[string]domain.DayPrice{"1": {BasePrice: 100}},
		},
	}

	_, err := resolveStay(p, calendars, checkIn, 2, 2)

	var dayErr *DayPriceError
	assert.ErrorAs(t, err, &dayErr)
	assert.Equal(t, "2027-03-02", dayErr.Date.Format("2006-01-02"))
}

func TestMonthsSpanned_SingleMonth(t *testing.T) {
	checkIn := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, 3, 14, 0, 0, 0, 0, time.UTC)

	months := monthsSpanned(checkIn, checkOut)

	assert.Equal(t, []monthKey{{Year: 2027, Month: time.March}}, months)
}

func TestMonthsSpanned_CheckOutOnFirstExcludesNextMonth(t *testing.T) {
	// Last night is March 31; April is never fetched.
	checkIn := time.Date(2027, 3, 30, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)

	months := monthsSpanned(checkIn, checkOut)

	assert.Equal(t, []monthKey{{Year: 2027, Month: time.March}}, months)
}

func TestMonthsSpanned_AcrossYearBoundary(t *testing.T) {
	checkIn := time.Date(2027, 12, 30, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2028, 1, 2, 0, 0, 0, 0, time.UTC)

	months := monthsSpanned(checkIn, checkOut)

	assert.Equal(t, []monthKey{
		{Year: 2027, Month: time.December},
		{Year: 2028, Month: time.January},
	}, months)
}
