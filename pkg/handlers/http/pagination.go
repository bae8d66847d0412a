package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

// parseCursor reads the optional RFC3339 cursor query parameter.
func parseCursor(c *fiber.Ctx) (*time.Time, error) {
	raw := c.Query("cursor")
	if raw == "" {
		return nil, nil
	}
	cursor, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}

func parseLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultPageSize)
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
