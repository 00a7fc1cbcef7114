package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"stayquote/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CalendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

type calendarModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PropertyID string    `gorm:"column:property_id;uniqueIndex:idx_calendar_month"`
	Year       int       `gorm:"column:year;uniqueIndex:idx_calendar_month"`
	Month      int       `gorm:"column:month;uniqueIndex:idx_calendar_month"`
	Days       []byte    `gorm:"column:days;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (calendarModel) TableName() string { return "price_calendars" }

func toDomainCalendar(m calendarModel) (*domain.PriceCalendar, error) {
	days := map[string]domain.DayPrice{}
	if len(m.Days) > 0 {
		if err := json.Unmarshal(m.Days, &days); err != nil {
			return nil, err
		}
	}

	return &domain.PriceCalendar{
		PropertyID: m.PropertyID,
		Year:       m.Year,
		Month:      time.Month(m.Month),
		Days:       days,
	}, nil
}

// GetMonth returns (nil, nil) when no calendar row exists for the month;
// absence is an expected outcome, not a storage error.
func (r *CalendarRepository) GetMonth(ctx context.Context, propertyID string, year int, month time.Month) (*domain.PriceCalendar, error) {
	var m calendarModel
	tx := r.db.WithContext(ctx).
		Where("property_id = ? AND year = ? AND month = ?", propertyID, year, int(month)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCalendar(m)
}

func (r *CalendarRepository) Upsert(ctx context.Context, cal *domain.PriceCalendar) error {
	days, err := json.Marshal(cal.Days)
	if err != nil {
		return err
	}

	m := calendarModel{
		PropertyID: cal.PropertyID,
		Year:       cal.Year,
		Month:      int(cal.Month),
		Days:       days,
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "property_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"days", "updated_at"}),
	}).Create(&m)
	return tx.Error
}
