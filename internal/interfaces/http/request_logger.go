package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status, latencia e IP.
// 5xx se registra como error, 4xx como warn y el resto como info.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el status
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = l.Error()
		case status >= fiber.StatusBadRequest:
			event = l.Warn()
		default:
			event = l.Info()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http request")
		return nil
	}
}
