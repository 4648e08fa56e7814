// middleware/metrics.go
package middleware

import (
	"strconv"

	"hacknet/metrics"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware counts every request by method, route and status.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		metrics.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}
