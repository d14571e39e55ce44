// file: internals/features/academics/career_periods/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/career_periods/controller"
)

func CareerPeriodAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewCareerPeriodController(db, v)

	g := r.Group("/career-periods")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
