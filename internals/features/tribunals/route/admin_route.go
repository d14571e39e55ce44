// file: internals/features/tribunals/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/tribunals/controller"
)

func TribunalAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTribunalController(db, v)

	g := r.Group("/tribunals")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Deactivate)

	g.Post("/:id/assignments", ctl.AssignStudent)
	g.Get("/:id/assignments", ctl.ListAssignments)
	g.Delete("/:id/assignments/:assignment_id", ctl.DeactivateAssignment)
}
