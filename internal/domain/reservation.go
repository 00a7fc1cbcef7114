package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation blocks a property's nights in [CheckIn, CheckOut).
type Reservation struct {
	ID         int64             `json:"id"`
	PropertyID string            `json:"property_id" validate:"required"`
	GuestName  string            `json:"guest_name,omitempty"`
	CheckIn    time.Time         `json:"check_in" validate:"required"`
	CheckOut   time.Time         `json:"check_out" validate:"required,gtfield=CheckIn"`
	Guests     int               `json:"guests" validate:"required,gte=1"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// AvailabilityResult is the answer of an availability subsystem for a date
// range. Source names the subsystem that produced it and is passed through
// to API responses for observability.
type AvailabilityResult struct {
	IsAvailable      bool        `json:"is_available"`
	UnavailableDates []time.Time `json:"unavailable_dates,omitempty"`
	Source           string      `json:"source"`
}
