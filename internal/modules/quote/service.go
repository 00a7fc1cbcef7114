package quote

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"stayquote/internal/domain"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	properties   PropertyRepository
	calendars    CalendarRepository
	availability AvailabilityChecker
	aggregator   BookingAggregator
}

func NewService(
	properties PropertyRepository,
	calendars CalendarRepository,
	availability AvailabilityChecker,
	aggregator BookingAggregator,
) *Service {
	return &Service{
		properties:   properties,
		calendars:    calendars,
		availability: availability,
		aggregator:   aggregator,
	}
}

type validatedRequest struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Nights     int
}

func validateRequest(req QuoteRequest) (*validatedRequest, error) {
	if req.PropertyID == "" || req.CheckIn == "" || req.CheckOut == "" || req.Guests == "" {
		return nil, ErrMissingParameter
	}

	guests, err := strconv.Atoi(req.Guests)
	if err != nil || guests < 1 {
		return nil, ErrInvalidGuests
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.CheckIn)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.CheckOut)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return nil, ErrPastCheckIn
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	return &validatedRequest{
		PropertyID: req.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		Nights:     int(checkOut.Sub(checkIn).Hours() / 24),
	}, nil
}

// Quote runs the full pipeline: validate, check availability, fetch the
// spanned calendars concurrently, resolve nightly prices, enforce the
// minimum stay and aggregate the total. Negative availability and
// minimum-stay outcomes come back as a Quote with Available=false, not as
// errors.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	v, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, v.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	avail, err := s.availability.CheckRange(ctx, v.PropertyID, v.CheckIn, v.CheckOut)
	if err != nil {
		return nil, err
	}
	if !avail.IsAvailable {
		dates := make([]string, 0, len(avail.UnavailableDates))
		for _, d := range avail.UnavailableDates {
			dates = append(dates, d.Format(dateLayout))
		}
		return &Quote{
			Available:        false,
			Reason:           ReasonUnavailableDates,
			UnavailableDates: dates,
			Meta:             Meta{Source: avail.Source},
		}, nil
	}

	calendars, err := s.fetchCalendars(ctx, v.PropertyID, v.CheckIn, v.CheckOut)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveStay(property, calendars, v.CheckIn, v.Nights, v.Guests)
	if err != nil {
		return nil, err
	}

	if v.Nights < resolved.MinimumStay {
		return &Quote{
			Available:      false,
			Reason:         ReasonMinimumStay,
			MinimumStay:    resolved.MinimumStay,
			RequiredNights: resolved.MinimumStay,
			Meta:           Meta{Source: avail.Source},
		}, nil
	}

	result := s.aggregator.Aggregate(
		resolved.NightlyPrices,
		property.CleaningFee,
		property.PricingConfig.LengthOfStayDiscounts,
	)

	return &Quote{
		Available: true,
		Pricing: &PricingPayload{
			Subtotal:           result.Subtotal,
			Discount:           result.Discount,
			DiscountPercent:    result.DiscountPercent,
			AccommodationTotal: result.AccommodationTotal,
			CleaningFee:        result.CleaningFee,
			Total:              result.Total,
			NumberOfNights:     result.NumberOfNights,
			DailyRates:         resolved.NightlyPrices,
			Currency:           property.BaseCurrency,
		},
		Meta: Meta{Source: avail.Source},
	}, nil
}

// fetchCalendars fans out one fetch per spanned month and joins them
// all-or-nothing: any error or absent month fails the whole batch.
func (s *Service) fetchCalendars(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (map[monthKey]*domain.PriceCalendar, error) {
	months := monthsSpanned(checkIn, checkOut)

	var mu sync.Mutex
	calendars := make(map[monthKey]*domain.PriceCalendar, len(months))

	g, gctx := errgroup.WithContext(ctx)
	for _, mk := range months {
		g.Go(func() error {
			cal, err := s.calendars.GetMonth(gctx, propertyID, mk.Year, mk.Month)
			if err != nil {
				return err
			}
			if cal == nil {
				return ErrPriceDataUnavailable
			}
			mu.Lock()
			calendars[mk] = cal
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return calendars, nil
}
