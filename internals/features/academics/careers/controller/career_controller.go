// file: internals/features/academics/careers/controller/career_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/careers/dto"
	"titulacion_backend/internals/features/academics/careers/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type CareerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCareerController(db *gorm.DB, v *validator.Validate) *CareerController {
	if v == nil {
		v = validator.New()
	}
	return &CareerController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin global)
   POST /api/a/careers
============================================ */

func (ctl *CareerController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "carreras"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.CareerCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	// code único
	var cnt int64
	if err := ctl.DB.Model(&model.CareerModel{}).
		Where("career_code = ?", p.CareerCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el código")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El código de carrera ya está en uso")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "El código de carrera ya está en uso"))
	}
	return helper.JsonCreated(c, "Carrera creada", dto.FromModel(ent))
}

/* ============================================
   LIST / GET
============================================ */

func (ctl *CareerController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.CareerModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("career_name ILIKE ? OR career_code ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("career_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar carreras")
	}

	var rows []model.CareerModel
	if err := db.Order("career_name ASC").Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar carreras")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

func (ctl *CareerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.CareerModel
	if err := ctl.DB.First(&ent, "career_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la carrera")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

/* ============================================
   PATCH / DEACTIVATE (admin global)
============================================ */

func (ctl *CareerController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "carreras"); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.CareerModel
	if err := ctl.DB.First(&ent, "career_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la carrera")
	}

	var p dto.CareerUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	if p.CareerCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*p.CareerCode))
		var cnt int64
		if err := ctl.DB.Model(&model.CareerModel{}).
			Where("career_code = ? AND career_id <> ?", code, id).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el código")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "El código de carrera ya está en uso")
		}
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "El código de carrera ya está en uso"))
	}
	return helper.JsonUpdated(c, "Carrera actualizada", dto.FromModel(ent))
}

// Deactivate: baja lógica, nunca borrado físico.
func (ctl *CareerController) Deactivate(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "carreras"); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Model(&model.CareerModel{}).
		Where("career_id = ?", id).
		Update("career_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
	}
	return helper.JsonDeleted(c, "Carrera desactivada", fiber.Map{"career_id": id})
}
