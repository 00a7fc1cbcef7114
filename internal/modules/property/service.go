package property

import (
	"context"
	"errors"
	"time"

	"stayquote/internal/domain"
	"stayquote/internal/repository"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("property not found")

type Service struct {
	properties *repository.PropertyRepository
	calendars  *repository.CalendarRepository
}

func NewService(properties *repository.PropertyRepository, calendars *repository.CalendarRepository) *Service {
	return &Service{properties: properties, calendars: calendars}
}

func (s *Service) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) UpsertProperty(ctx context.Context, req UpsertPropertyRequest) (*domain.Property, error) {
	p := &domain.Property{
		ID:                 req.ID,
		Title:              req.Title,
		City:               req.City,
		BaseOccupancy:      req.BaseOccupancy,
		ExtraGuestFee:      req.ExtraGuestFee,
		PricePerNight:      req.PricePerNight,
		CleaningFee:        req.CleaningFee,
		BaseCurrency:       req.BaseCurrency,
		DefaultMinimumStay: req.DefaultMinimumStay,
		PricingConfig:      req.PricingConfig,
		IsActive:           true,
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	if err := s.properties.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpsertCalendar(ctx context.Context, propertyID string, req UpsertCalendarRequest) (*domain.PriceCalendar, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	cal := &domain.PriceCalendar{
		PropertyID: propertyID,
		Year:       req.Year,
		Month:      time.Month(req.Month),
		Days:       req.Days,
	}
	if err := s.calendars.Upsert(ctx, cal); err != nil {
		return nil, err
	}
	return cal, nil
}
