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

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

type propertyModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	Title              string    `gorm:"column:title"`
	City               string    `gorm:"column:city"`
	BaseOccupancy      int       `gorm:"column:base_occupancy"`
	ExtraGuestFee      float64   `gorm:"column:extra_guest_fee"`
	PricePerNight      float64   `gorm:"column:price_per_night"`
	CleaningFee        float64   `gorm:"column:cleaning_fee"`
	BaseCurrency       string    `gorm:"column:base_currency"`
	DefaultMinimumStay int       `gorm:"column:default_minimum_stay"`
	PricingConfig      []byte    `gorm:"column:pricing_config;type:text"`
	IsActive           bool      `gorm:"column:is_active"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string { return "properties" }

func toDomainProperty(m propertyModel) (*domain.Property, error) {
	var cfg domain.PricingConfig
	if len(m.PricingConfig) > 0 {
		if err := json.Unmarshal(m.PricingConfig, &cfg); err != nil {
			return nil, err
		}
	}

	return &domain.Property{
		ID:                 m.ID,
		Title:              m.Title,
		City:               m.City,
		BaseOccupancy:      m.BaseOccupancy,
		ExtraGuestFee:      m.ExtraGuestFee,
		PricePerNight:      m.PricePerNight,
		CleaningFee:        m.CleaningFee,
		BaseCurrency:       m.BaseCurrency,
		DefaultMinimumStay: m.DefaultMinimumStay,
		PricingConfig:      cfg,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

func toPropertyModel(p *domain.Property) (propertyModel, error) {
	cfg, err := json.Marshal(p.PricingConfig)
	if err != nil {
		return propertyModel{}, err
	}

	return propertyModel{
		ID:                 p.ID,
		Title:              p.Title,
		City:               p.City,
		BaseOccupancy:      p.BaseOccupancy,
		ExtraGuestFee:      p.ExtraGuestFee,
		PricePerNight:      p.PricePerNight,
		CleaningFee:        p.CleaningFee,
		BaseCurrency:       p.BaseCurrency,
		DefaultMinimumStay: p.DefaultMinimumStay,
		PricingConfig:      cfg,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

// GetByID returns (nil, nil) when the property does not exist so callers can
// map absence to their own not-found error.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var m propertyModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainProperty(m)
}

func (r *PropertyRepository) Upsert(ctx context.Context, p *domain.Property) error {
	m, err := toPropertyModel(p)
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}
