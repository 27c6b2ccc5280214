package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"valiant-hris/internal/core/domain"

	"gorm.io/gorm"
)

// translate maps store failures onto domain errors.
// notFound and conflict are returned for missing rows and unique index violations.
func translate(err, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isDuplicate(err):
		return conflict
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	default:
		return err
	}
}

// isDuplicate reports a unique index violation. Drivers without error
// translation are matched on their message.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// requireAffected turns a write that touched no rows into notFound
func requireAffected(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return translate(result.Error, notFound, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}
