package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"gorm.io/gorm"
)

// mapError translates GORM and driver errors into domain errors. notFound is
// the domain error to use when the record is absent.
func mapError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isDuplicateKeyError(err):
		return errs.ErrDuplicateUser
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// isDuplicateKeyError detects unique constraint violations across drivers
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
