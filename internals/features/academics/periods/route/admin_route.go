// file: internals/features/academics/periods/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/periods/controller"
)

func AcademicPeriodAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAcademicPeriodController(db, v)

	g := r.Group("/academic-periods")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
