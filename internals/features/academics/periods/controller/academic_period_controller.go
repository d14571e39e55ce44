// file: internals/features/academics/periods/controller/academic_period_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/periods/dto"
	"titulacion_backend/internals/features/academics/periods/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

type AcademicPeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicPeriodController(db *gorm.DB, v *validator.Validate) *AcademicPeriodController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicPeriodController{DB: db, Validator: v}
}

// POST /api/a/academic-periods (admin global)
func (ctl *AcademicPeriodController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "periodos académicos"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.AcademicPeriodCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.AcademicPeriodModel{}).
		Where("academic_period_name = ?", p.AcademicPeriodName).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el nombre")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe un periodo con ese nombre")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Ya existe un periodo con ese nombre"))
	}
	return helper.JsonCreated(c, "Periodo académico creado", dto.FromModel(ent))
}

// GET /api/a/academic-periods
func (ctl *AcademicPeriodController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.AcademicPeriodModel{})
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("academic_period_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar periodos")
	}
	var rows []model.AcademicPeriodModel
	if err := db.Order("academic_period_start_date DESC").Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar periodos")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

// GET /api/a/academic-periods/:id
func (ctl *AcademicPeriodController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.AcademicPeriodModel
	if err := ctl.DB.First(&ent, "academic_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el periodo")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

// PATCH /api/a/academic-periods/:id (admin global)
func (ctl *AcademicPeriodController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "periodos académicos"); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.AcademicPeriodModel
	if err := ctl.DB.First(&ent, "academic_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el periodo")
	}

	var p dto.AcademicPeriodUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)

	if ent.AcademicPeriodEndDate.Before(ent.AcademicPeriodStartDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "La fecha de fin debe ser >= a la de inicio")
	}
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Ya existe un periodo con ese nombre"))
	}
	return helper.JsonUpdated(c, "Periodo actualizado", dto.FromModel(ent))
}

// DELETE /api/a/academic-periods/:id — baja lógica
func (ctl *AcademicPeriodController) Deactivate(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "periodos académicos"); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Model(&model.AcademicPeriodModel{}).
		Where("academic_period_id = ?", id).
		Update("academic_period_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Periodo no encontrado")
	}
	return helper.JsonDeleted(c, "Periodo desactivado", fiber.Map{"academic_period_id": id})
}
