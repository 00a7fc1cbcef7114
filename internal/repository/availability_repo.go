package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"stayquote/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SourceReservations tags availability answers produced from the
// reservations table.
const SourceReservations = "reservations"

// ErrOverlappingReservation is returned when Postgres rejects a reservation
// on the no-overlap exclusion constraint.
var ErrOverlappingReservation = errors.New("reservation overlaps an existing one")

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type reservationModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PropertyID string    `gorm:"column:property_id;index"`
	GuestName  string    `gorm:"column:guest_name"`
	CheckIn    time.Time `gorm:"column:check_in"`
	CheckOut   time.Time `gorm:"column:check_out"`
	Guests     int       `gorm:"column:guests"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toReservationModel(res *domain.Reservation) reservationModel {
	return reservationModel{
		ID:         res.ID,
		PropertyID: res.PropertyID,
		GuestName:  res.GuestName,
		CheckIn:    res.CheckIn,
		CheckOut:   res.CheckOut,
		Guests:     res.Guests,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt,
		UpdatedAt:  res.UpdatedAt,
	}
}

// CheckRange reports whether every night in [checkIn, checkOut) is free of
// non-cancelled reservations. Unavailable nights are returned sorted and
// clamped to the requested range.
func (r *AvailabilityRepository) CheckRange(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error) {
	var rows []reservationModel
	tx := r.db.WithContext(ctx).
		Where("property_id = ? AND status <> ? AND check_in < ? AND check_out > ?",
			propertyID, string(domain.ReservationCancelled), checkOut, checkIn).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	blocked := map[time.Time]struct{}{}
	for _, row := range rows {
		for d := dateOnly(row.CheckIn); d.Before(dateOnly(row.CheckOut)); d = d.AddDate(0, 0, 1) {
			if !d.Before(checkIn) && d.Before(checkOut) {
				blocked[d] = struct{}{}
			}
		}
	}

	if len(blocked) == 0 {
		return &domain.AvailabilityResult{
			IsAvailable: true,
			Source:      SourceReservations,
		}, nil
	}

	dates := make([]time.Time, 0, len(blocked))
	for d := range blocked {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return &domain.AvailabilityResult{
		IsAvailable:      false,
		UnavailableDates: dates,
		Source:           SourceReservations,
	}, nil
}

func (r *AvailabilityRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "idx_no_overlap" {
			return ErrOverlappingReservation
		}
		return tx.Error
	}
	res.ID = m.ID
	res.CreatedAt = m.CreatedAt
	res.UpdatedAt = m.UpdatedAt
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
