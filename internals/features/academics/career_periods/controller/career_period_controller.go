// file: internals/features/academics/career_periods/controller/career_period_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	careerModel "titulacion_backend/internals/features/academics/careers/model"
	"titulacion_backend/internals/features/academics/career_periods/dto"
	"titulacion_backend/internals/features/academics/career_periods/model"
	periodModel "titulacion_backend/internals/features/academics/periods/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

type CareerPeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCareerPeriodController(db *gorm.DB, v *validator.Validate) *CareerPeriodController {
	if v == nil {
		v = validator.New()
	}
	return &CareerPeriodController{DB: db, Validator: v}
}

/* ============================================
   CREATE
   POST /api/a/career-periods
============================================ */

func (ctl *CareerPeriodController) Create(c *fiber.Ctx) error {
	var p dto.CareerPeriodCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := helperAuth.EnsureCareerAdmin(c, p.CareerPeriodCareerID, "periodos de carrera"); err != nil {
		return helper.FromFiberError(c, err)
	}

	// carrera y periodo deben existir y estar activos
	var career careerModel.CareerModel
	if err := ctl.DB.First(&career, "career_id = ? AND career_is_active = TRUE", p.CareerPeriodCareerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "La carrera no existe o está inactiva")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar la carrera")
	}
	var period periodModel.AcademicPeriodModel
	if err := ctl.DB.First(&period, "academic_period_id = ? AND academic_period_is_active = TRUE", p.CareerPeriodPeriodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El periodo académico no existe o está inactivo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el periodo")
	}

	// binding único por (carrera, periodo)
	var cnt int64
	if err := ctl.DB.Model(&model.CareerPeriodModel{}).
		Where("career_period_career_id = ? AND career_period_period_id = ?", p.CareerPeriodCareerID, p.CareerPeriodPeriodID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el binding")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "La carrera ya está registrada en ese periodo")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "La carrera ya está registrada en ese periodo"))
	}
	return helper.JsonCreated(c, "Periodo de carrera creado", dto.FromModel(ent))
}

/* ============================================
   LIST / GET
============================================ */

func (ctl *CareerPeriodController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.CareerPeriodModel{})
	if s := strings.TrimSpace(c.Query("career_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "career_id inválido")
		}
		db = db.Where("career_period_career_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("period_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "period_id inválido")
		}
		db = db.Where("career_period_period_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("career_period_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar")
	}
	var rows []model.CareerPeriodModel
	if err := db.Order("career_period_created_at DESC").Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

func (ctl *CareerPeriodController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.CareerPeriodModel
	if err := ctl.DB.First(&ent, "career_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo de carrera no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* ============================================
   PATCH / DEACTIVATE
============================================ */

func (ctl *CareerPeriodController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.CareerPeriodModel
	if err := ctl.DB.First(&ent, "career_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo de carrera no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}

	if err := helperAuth.EnsureCareerAdmin(c, ent.CareerPeriodCareerID, "periodos de carrera"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.CareerPeriodUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar")
	}
	return helper.JsonUpdated(c, "Periodo de carrera actualizado", dto.FromModel(ent))
}

// Deactivate: baja lógica, sin cascada.
func (ctl *CareerPeriodController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.CareerPeriodModel
	if err := ctl.DB.First(&ent, "career_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periodo de carrera no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}
	if err := helperAuth.EnsureCareerAdmin(c, ent.CareerPeriodCareerID, "periodos de carrera"); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.Model(&ent).Update("career_period_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar")
	}
	return helper.JsonDeleted(c, "Periodo de carrera desactivado", fiber.Map{"career_period_id": id})
}
