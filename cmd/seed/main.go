package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"stayquote/internal/database"
	"stayquote/internal/domain"
	"stayquote/internal/repository"

	"github.com/google/uuid"
)

// Seeds a local database with two demo properties, six months of price
// calendars each and a couple of reservations to exercise the availability
// path.
func main() {
	db, err := database.Connect("stayquote.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM price_calendars")
	db.Exec("DELETE FROM properties")

	ctx := context.Background()
	properties := repository.NewPropertyRepository(db)
	calendars := repository.NewCalendarRepository(db)
	availability := repository.NewAvailabilityRepository(db)

	log.Println("Creating properties...")

	seaside := &domain.Property{
		ID:                 uuid.NewString(),
		Title:              "Seaside Loft",
		City:               "Lisbon",
		BaseOccupancy:      2,
		ExtraGuestFee:      10,
		PricePerNight:      100,
		CleaningFee:        20,
		BaseCurrency:       "EUR",
		DefaultMinimumStay: 1,
		PricingConfig: domain.PricingConfig{
			LengthOfStayDiscounts: []domain.LengthOfStayDiscount{
				{ThresholdNights: 7, Percent: 10},
				{ThresholdNights: 28, Percent: 20},
			},
		},
		IsActive: true,
	}
	if err := properties.Upsert(ctx, seaside); err != nil {
		log.Fatal(err)
	}

	cabin := &domain.Property{
		ID:                 uuid.NewString(),
		Title:              "Mountain Cabin",
		City:               "Innsbruck",
		BaseOccupancy:      4,
		ExtraGuestFee:      15,
		PricePerNight:      180,
		CleaningFee:        45,
		BaseCurrency:       "EUR",
		DefaultMinimumStay: 2,
		IsActive:           true,
	}
	if err := properties.Upsert(ctx, cabin); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating price calendars...")

	now := time.Now().UTC()
	for _, p := range []*domain.Property{seaside, cabin} {
		for offset := 0; offset < 6; offset++ {
			first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
			cal := &domain.PriceCalendar{
				PropertyID: p.ID,
				Year:       first.Year(),
				Month:      first.Month(),
				Days:       map[string]domain.DayPrice{},
			}

			daysInMonth := first.AddDate(0, 1, -1).Day()
			for day := 1; day <= daysInMonth; day++ {
				date := first.AddDate(0, 0, day-1)
				dp := domain.DayPrice{BasePrice: p.PricePerNight}

				// Weekend nights cost more and require a 2-night stay.
				if wd := date.Weekday(); wd == time.Friday || wd == time.Saturday {
					dp.BasePrice = p.PricePerNight * 1.25
					dp.MinimumStay = 2
					dp.Prices = map[string]float64{
						strconv.Itoa(p.BaseOccupancy + 2): dp.BasePrice * 1.3,
					}
				}

				cal.Days[strconv.Itoa(day)] = dp
			}

			if err := calendars.Upsert(ctx, cal); err != nil {
				log.Fatal(err)
			}
		}
	}

	log.Println("Creating reservations...")

	checkIn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 14)
	res := &domain.Reservation{
		PropertyID: seaside.ID,
		GuestName:  "Ana Martins",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		Status:     domain.ReservationConfirmed,
	}
	if err := availability.CreateReservation(ctx, res); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
	log.Println("Seaside Loft:", seaside.ID)
	log.Println("Mountain Cabin:", cabin.ID)
}
