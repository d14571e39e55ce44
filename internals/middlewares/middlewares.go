package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"titulacion_backend/internals/middlewares/logger"
)

// SetupMiddlewares instala la cadena base (orden importa).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
