// file: internals/features/rubrics/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/rubrics/controller"
)

func RubricAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewRubricController(db, v)

	g := r.Group("/rubrics")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Put("/cells", ctl.UpsertCell)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)

	g.Post("/:id/components", ctl.CreateComponent)
	g.Get("/:id/components", ctl.ListComponents)
	g.Post("/:id/levels", ctl.CreateLevel)
	g.Get("/:id/levels", ctl.ListLevels)

	g.Patch("/components/:component_id", ctl.PatchComponent)
	g.Post("/components/:component_id/criteria", ctl.CreateCriterion)
	g.Get("/components/:component_id/criteria", ctl.ListCriteria)
	g.Get("/components/:component_id/cells", ctl.ListCells)
	g.Patch("/criteria/:criterion_id", ctl.PatchCriterion)
	g.Patch("/levels/:level_id", ctl.PatchLevel)
}
