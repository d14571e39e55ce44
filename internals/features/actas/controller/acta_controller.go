// file: internals/features/actas/controller/acta_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	"titulacion_backend/internals/features/actas/dto"
	"titulacion_backend/internals/features/actas/model"
	"titulacion_backend/internals/features/actas/service"
	evalService "titulacion_backend/internals/features/evaluation/service"
	studentService "titulacion_backend/internals/features/people/students/service"
	tribunalService "titulacion_backend/internals/features/tribunals/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ActaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewActaController(db *gorm.DB, v *validator.Validate) *ActaController {
	if v == nil {
		v = validator.New()
	}
	return &ActaController{DB: db, Validator: v}
}

/* =========================
   GENERATE
   POST /api/a/assignments/:id/acta
   Corre el agregador y hace upsert de la única fila activa
   del contexto: sin acta → DRAFT; DRAFT → DRAFT in situ.
   Generar dos veces nunca duplica.
   ========================= */

func (ctl *ActaController) Generate(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	assignment, err := tribunalService.GetAssignment(ctl.DB, assignmentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !assignment.Active {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "La asignación está inactiva")
	}
	tribunal, err := tribunalService.GetTribunal(ctl.DB, assignment.TribunalID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cp, err := cpService.GetCareerPeriod(ctl.DB, tribunal.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "actas"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.ActaModel

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		plan, err := evalService.ActivePlanOf(tx, tribunal.CareerPeriodID)
		if err != nil {
			return err
		}
		items, err := evalService.ActiveItemsOf(tx, plan.EvaluationPlanID)
		if err != nil {
			return err
		}
		planItems, err := evalService.AssemblePlanItems(tx, assignment.ID, items)
		if err != nil {
			return err
		}
		agg, err := evalService.AggregatePlan(planItems, cp.PassThreshold)
		if err != nil {
			return err
		}

		ent, err = service.BuildActa(assignment.ID, agg, time.Now())
		if err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "acta_assignment_id"}},
			DoUpdates: clause.AssignmentColumns(service.ActaRecalcColumns),
		}).Create(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonOK(c, "Acta generada", dto.FromModel(ent))
}

/* =========================
   GET
   GET /api/a/assignments/:id/acta
   ========================= */

func (ctl *ActaController) GetByAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.ActaModel
	if err := ctl.DB.First(&ent, "acta_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "La asignación aún no tiene acta")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el acta")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* =========================
   RENDER PAYLOAD
   GET /api/a/assignments/:id/acta/payload
   Vista estable para el renderizador externo de documentos.
   ========================= */

func (ctl *ActaController) GetRenderPayload(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.ActaModel
	if err := ctl.DB.First(&ent, "acta_assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "La asignación aún no tiene acta")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el acta")
	}

	assignment, err := tribunalService.GetAssignment(ctl.DB, assignmentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	student, err := studentService.GetStudent(ctl.DB, assignment.StudentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tribunal, err := tribunalService.GetTribunal(ctl.DB, assignment.TribunalID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	cp, err := cpService.GetCareerPeriod(ctl.DB, tribunal.CareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var careerName string
	if err := ctl.DB.Table("careers").
		Select("career_name").
		Where("career_id = ?", cp.CareerID).
		Scan(&careerName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la carrera")
	}

	payload := service.RenderPayload{
		AssignmentID:        assignment.ID,
		StudentName:         student.FullName,
		CareerName:          careerName,
		NotaTeorica:         ent.ActaNotaTeorica,
		NotaPracticaEscrita: ent.ActaNotaPracticaEscrita,
		NotaPracticaOral:    ent.ActaNotaPracticaOral,
		NotaFinal:           ent.ActaNotaFinal,
		Calificacion:        ent.ActaCalificacion,
		Aprobado:            ent.ActaAprobado,
		GeneratedAt:         ent.ActaGeneratedAt,
	}
	return helper.JsonOK(c, "ok", payload)
}
