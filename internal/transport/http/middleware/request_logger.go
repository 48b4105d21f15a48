// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it completes. Slack retries event
// deliveries on slow responses, so the latency field is the first thing to
// look at when duplicate events show up in the handler logs.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	accessLog := log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals("requestid").(string)
		fields := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
			"ip", c.IP(),
			"request_id", reqID,
		}

		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			accessLog.Errorw("request failed", fields...)
		} else {
			accessLog.Infow("request served", fields...)
		}
		return err
	}
}
