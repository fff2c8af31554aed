package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every persistence model.
// Used by cmd/seed and the e2e suite; production schemas are managed the
// same way at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&ideaModel{},
		&mediaPostModel{},
		&eventModel{},
		&projectModel{},
		&feedbackModel{},
		&collabRequestModel{},
		&portfolioItemModel{},
	)
}
