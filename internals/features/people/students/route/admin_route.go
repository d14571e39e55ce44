// file: internals/features/people/students/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/people/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewStudentController(db, v)

	g := r.Group("/students")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
