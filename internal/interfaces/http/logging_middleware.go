package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Gouveiaesilva/projeto-manuela/pkg/logger"
)

// RequestLogger registra cada requisição com método, rota, status e duração.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		evt := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = log.Error().Err(err)
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("request")

		return err
	}
}
