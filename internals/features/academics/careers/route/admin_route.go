// file: internals/features/academics/careers/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/careers/controller"
)

func CareerAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewCareerController(db, v)

	g := r.Group("/careers")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)
}
