// file: internals/features/evaluation/controller/plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	"titulacion_backend/internals/features/evaluation/dto"
	"titulacion_backend/internals/features/evaluation/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type EvaluationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationController(db *gorm.DB, v *validator.Validate) *EvaluationController {
	if v == nil {
		v = validator.New()
	}
	return &EvaluationController{DB: db, Validator: v}
}

/* =========================
   CREATE PLAN
   POST /api/a/evaluation-plans
   Un solo plan activo por periodo de carrera.
   ========================= */

func (ctl *EvaluationController) CreatePlan(c *fiber.Ctx) error {
	var p dto.PlanCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	cp, err := cpService.GetCareerPeriod(ctl.DB, p.EvaluationPlanCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "planes de evaluación"); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel()

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.EvaluationPlanModel{}).
			Where("evaluation_plan_career_period_id = ? AND evaluation_plan_is_active = TRUE", cp.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "El periodo de carrera ya tiene un plan activo")
		}
		if err := tx.Create(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "El periodo de carrera ya tiene un plan activo")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "Plan creado", dto.PlanFromModel(ent))
}

/* =========================
   UPDATE PLAN
   PATCH /api/a/evaluation-plans/:id
   Reactivar re-verifica el único-activo.
   ========================= */

func (ctl *EvaluationController) PatchPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.EvaluationPlanModel
	if err := ctl.DB.First(&ent, "evaluation_plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el plan")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.EvaluationPlanCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "planes de evaluación"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.PlanUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	wasActive := ent.EvaluationPlanIsActive
	p.ApplyUpdates(&ent)

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.EvaluationPlanIsActive && !wasActive {
			var cnt int64
			if err := tx.Model(&model.EvaluationPlanModel{}).
				Where("evaluation_plan_career_period_id = ? AND evaluation_plan_is_active = TRUE AND evaluation_plan_id <> ?",
					ent.EvaluationPlanCareerPeriodID, ent.EvaluationPlanID).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusConflict, "El periodo de carrera ya tiene un plan activo")
			}
		}
		if err := tx.Save(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "El periodo de carrera ya tiene un plan activo")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Plan actualizado", dto.PlanFromModel(ent))
}

/* =========================
   LIST / GET
   ========================= */

func (ctl *EvaluationController) ListPlans(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.EvaluationPlanModel{})
	if s := strings.TrimSpace(c.Query("career_period_id")); s != "" {
		cpID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "career_period_id inválido")
		}
		db = db.Where("evaluation_plan_career_period_id = ?", cpID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar planes")
	}
	var rows []model.EvaluationPlanModel
	if err := db.Order("evaluation_plan_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar planes")
	}
	return helper.JsonList(c, "ok", dto.PlansFromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

func (ctl *EvaluationController) GetPlanByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.EvaluationPlanModel
	if err := ctl.DB.Preload("EvaluationItems").
		First(&ent, "evaluation_plan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el plan")
	}
	return helper.JsonOK(c, "ok", dto.PlanFromModel(ent))
}
