// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"titulacion_backend/internals/configs"
	careerPeriodRoute "titulacion_backend/internals/features/academics/career_periods/route"
	careerRoute "titulacion_backend/internals/features/academics/careers/route"
	periodRoute "titulacion_backend/internals/features/academics/periods/route"
	actaRoute "titulacion_backend/internals/features/actas/route"
	evaluationRoute "titulacion_backend/internals/features/evaluation/route"
	raterRoute "titulacion_backend/internals/features/people/raters/route"
	studentRoute "titulacion_backend/internals/features/people/students/route"
	rubricRoute "titulacion_backend/internals/features/rubrics/route"
	timeSlotRoute "titulacion_backend/internals/features/scheduling/time_slots/route"
	tribunalRoute "titulacion_backend/internals/features/tribunals/route"
	middleware "titulacion_backend/internals/middlewares/auth"
)

/* =========================================================
   SetupRoutes — /api/a: administración (datos de referencia,
   agenda, tribunales, rúbricas, planes, actas); /api/u:
   operaciones de evaluadores. Ambos grupos exigen JWT; la
   autorización fina la decide cada controller vía scope.
========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	jwt := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.GetEnv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	api := app.Group("/api")

	admin := api.Group("/a", jwt)
	careerRoute.CareerAdminRoutes(admin, db, v)
	periodRoute.AcademicPeriodAdminRoutes(admin, db, v)
	careerPeriodRoute.CareerPeriodAdminRoutes(admin, db, v)
	raterRoute.RaterAdminRoutes(admin, db, v)
	studentRoute.StudentAdminRoutes(admin, db, v)
	timeSlotRoute.TimeSlotAdminRoutes(admin, db, v)
	tribunalRoute.TribunalAdminRoutes(admin, db, v)
	rubricRoute.RubricAdminRoutes(admin, db, v)
	evaluationRoute.EvaluationAdminRoutes(admin, db, v)
	actaRoute.ActaAdminRoutes(admin, db, v)

	user := api.Group("/u", jwt)
	evaluationRoute.EvaluationRaterRoutes(user, db, v)
}
