package services

import (
	"errors"
	"math"
	"strings"

	"valiant-hris/internal/core/domain"
)

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// required returns a validation error naming the first blank field
func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return domain.Validation("%s is required", f[0])
		}
	}
	return nil
}

func checkEnum(field, value string, allowed []string) error {
	if !domain.OneOf(value, allowed) {
		return domain.Validation("%s must be one of: %s", field, strings.Join(allowed, ", "))
	}
	return nil
}

// pick returns the override when set, else the current value
func pick[T any](current T, override *T) T {
	if override != nil {
		return *override
	}
	return current
}

// isClientError reports errors caused by the request rather than the server
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}
