// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Pranshu-project/zyro/pkg/metrics"
)

// RequestLogger logs HTTP requests with method, path, status and duration,
// and feeds the request histogram.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		log.Infow("http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"request_id", reqID,
		)
		metrics.ObserveHTTPRequest(c.Method(), c.Route().Path, strconv.Itoa(status), dur)
		return err
	}
}
