package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing the repositories in this
// package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&propertyModel{},
		&calendarModel{},
		&reservationModel{},
	)
}
