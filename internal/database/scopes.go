package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to subject.
func OwnedBy(subject string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("cognito_sub = ?", subject)
	}
}
