package handlers

import (
	"strings"
	"time"

	"valiant-hris/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

// filterParam returns the query value, treating "all" as no filter
func filterParam(c *fiber.Ctx, key string) string {
	v := strings.TrimSpace(c.Query(key))
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// dateParam parses an optional date query value at day precision
func dateParam(c *fiber.Ctx, key string) (*time.Time, error) {
	v := filterParam(c, key)
	if v == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return nil, domain.Validation("%s must be a date (YYYY-MM-DD)", key)
	}
	return &t, nil
}
