// file: internals/features/people/raters/controller/rater_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/people/raters/dto"
	"titulacion_backend/internals/features/people/raters/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

type RaterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRaterController(db *gorm.DB, v *validator.Validate) *RaterController {
	if v == nil {
		v = validator.New()
	}
	return &RaterController{DB: db, Validator: v}
}

// POST /api/a/raters
func (ctl *RaterController) Create(c *fiber.Ctx) error {
	var p dto.RaterCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	if err := helperAuth.EnsureCareerAdmin(c, p.RaterCareerID, "nombramientos docentes"); err != nil {
		return helper.FromFiberError(c, err)
	}

	// un nombramiento activo por (documento, carrera)
	var cnt int64
	if err := ctl.DB.Model(&model.RaterModel{}).
		Where("rater_document = ? AND rater_career_id = ? AND rater_is_active = TRUE", p.RaterDocument, p.RaterCareerID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el nombramiento")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El docente ya tiene nombramiento activo en esa carrera")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "El docente ya tiene nombramiento activo en esa carrera"))
	}
	return helper.JsonCreated(c, "Nombramiento creado", dto.FromModel(ent))
}

// GET /api/a/raters?career_id=&active=&q=
func (ctl *RaterController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.RaterModel{})
	if s := strings.TrimSpace(c.Query("career_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "career_id inválido")
		}
		db = db.Where("rater_career_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("rater_is_active = ?", v == "true" || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("rater_full_name ILIKE ? OR rater_document ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar")
	}
	var rows []model.RaterModel
	if err := db.Order("rater_full_name ASC").Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

// PATCH /api/a/raters/:id
func (ctl *RaterController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.RaterModel
	if err := ctl.DB.First(&ent, "rater_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nombramiento no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}
	if err := helperAuth.EnsureCareerAdmin(c, ent.RaterCareerID, "nombramientos docentes"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.RaterUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar")
	}
	return helper.JsonUpdated(c, "Nombramiento actualizado", dto.FromModel(ent))
}

// DELETE /api/a/raters/:id — baja lógica
func (ctl *RaterController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.RaterModel
	if err := ctl.DB.First(&ent, "rater_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nombramiento no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}
	if err := helperAuth.EnsureCareerAdmin(c, ent.RaterCareerID, "nombramientos docentes"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Model(&ent).Update("rater_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar")
	}
	return helper.JsonDeleted(c, "Nombramiento desactivado", fiber.Map{"rater_id": id})
}
