// file: internals/features/people/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	"titulacion_backend/internals/features/people/students/dto"
	"titulacion_backend/internals/features/people/students/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentController{DB: db, Validator: v}
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var p dto.StudentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	cp, err := cpService.GetCareerPeriod(ctl.DB, p.StudentCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "estudiantes"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&model.StudentModel{}).
		Where("student_document = ?", p.StudentDocument).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo verificar el documento")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe un estudiante con ese documento")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Ya existe un estudiante con ese documento"))
	}
	return helper.JsonCreated(c, "Estudiante creado", dto.FromModel(ent))
}

// GET /api/a/students?career_period_id=&active=&q=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.StudentModel{})
	if s := strings.TrimSpace(c.Query("career_period_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "career_period_id inválido")
		}
		db = db.Where("student_career_period_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("student_is_active = ?", v == "true" || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		db = db.Where("student_full_name ILIKE ? OR student_document ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar")
	}
	var rows []model.StudentModel
	if err := db.Order("student_full_name ASC").Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

// PATCH /api/a/students/:id
func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.StudentModel
	if err := ctl.DB.First(&ent, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}

	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.StudentCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "estudiantes"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.StudentUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar")
	}
	return helper.JsonUpdated(c, "Estudiante actualizado", dto.FromModel(ent))
}

// DELETE /api/a/students/:id — baja lógica
func (ctl *StudentController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.StudentModel
	if err := ctl.DB.First(&ent, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener")
	}
	cp, err := cpService.GetCareerPeriod(ctl.DB, ent.StudentCareerPeriodID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "estudiantes"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Model(&ent).Update("student_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar")
	}
	return helper.JsonDeleted(c, "Estudiante desactivado", fiber.Map{"student_id": id})
}
