// file: internals/features/evaluation/route/evaluation_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/evaluation/controller"
)

// EvaluationAdminRoutes: planes, ítems y agregación (admins).
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewEvaluationController(db, v)

	g := r.Group("/evaluation-plans")
	g.Post("/", ctl.CreatePlan)
	g.Get("/", ctl.ListPlans)
	g.Get("/:id", ctl.GetPlanByID)
	g.Patch("/:id", ctl.PatchPlan)
	g.Post("/:id/items", ctl.CreateItem)
	g.Get("/:id/items", ctl.ListItems)
	g.Patch("/items/:item_id", ctl.PatchItem)
	g.Put("/items/:item_id/component-raters", ctl.BindComponentRater)

	r.Get("/assignments/:id/aggregate", ctl.GetAggregate)
}

// EvaluationRaterRoutes: envío de calificaciones (evaluadores).
func EvaluationRaterRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewEvaluationController(db, v)

	r.Put("/scores", ctl.SubmitScore)
}
