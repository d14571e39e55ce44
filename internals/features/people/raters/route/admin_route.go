// file: internals/features/people/raters/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/people/raters/controller"
)

func RaterAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewRaterController(db, v)

	g := r.Group("/raters")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
