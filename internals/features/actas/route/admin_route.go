// file: internals/features/actas/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/actas/controller"
	"titulacion_backend/internals/middlewares"
)

func ActaAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewActaController(db, v)

	r.Post("/assignments/:id/acta", middlewares.GenerateActaRateLimiter(), ctl.Generate)
	r.Get("/assignments/:id/acta", ctl.GetByAssignment)
	r.Get("/assignments/:id/acta/payload", ctl.GetRenderPayload)
}
