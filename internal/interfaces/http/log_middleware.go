package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/controlfacil/inventario-api/pkg/logger"
)

// LoggingMiddleware registra cada petición con método, ruta, estado y
// latencia. Los errores ya fueron convertidos a respuesta por los handlers.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		evento := log.Info()
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			evento = log.Error()
		}
		evento.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(inicio)).
			Msg("request")
		return err
	}
}
