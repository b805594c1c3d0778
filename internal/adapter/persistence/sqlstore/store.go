// Package sqlstore implements the store ports on gorm. It runs on postgres
// in production and on sqlite for local development and tests.
package sqlstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Migrate creates or updates every table and index.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
