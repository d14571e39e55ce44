// file: internals/features/rubrics/controller/rubric_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	periodService "titulacion_backend/internals/features/academics/periods/service"
	"titulacion_backend/internals/features/rubrics/dto"
	"titulacion_backend/internals/features/rubrics/model"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type RubricController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRubricController(db *gorm.DB, v *validator.Validate) *RubricController {
	if v == nil {
		v = validator.New()
	}
	return &RubricController{DB: db, Validator: v}
}

/* =========================
   RUBRIC
   POST /api/a/rubrics
   ========================= */

func (ctl *RubricController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.RubricCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	ok, err := periodService.AcademicPeriodExists(ctl.DB, p.RubricAcademicPeriodID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el periodo académico")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "El periodo académico no existe")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Ya existe una rúbrica con esos datos"))
	}
	return helper.JsonCreated(c, "Rúbrica creada", dto.RubricFromModel(ent))
}

func (ctl *RubricController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.RubricModel
	if err := ctl.DB.First(&ent, "rubric_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rúbrica no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la rúbrica")
	}

	var p dto.RubricUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Ya existe una rúbrica con esos datos"))
	}
	return helper.JsonUpdated(c, "Rúbrica actualizada", dto.RubricFromModel(ent))
}

func (ctl *RubricController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 25, 200)

	db := ctl.DB.Model(&model.RubricModel{})
	if s := strings.TrimSpace(c.Query("academic_period_id")); s != "" {
		pid, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "academic_period_id inválido")
		}
		db = db.Where("rubric_academic_period_id = ?", pid)
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		db = db.Where("rubric_is_active = ?", v == "true" || v == "1")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar rúbricas")
	}
	var rows []model.RubricModel
	if err := db.Order("rubric_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar rúbricas")
	}
	return helper.JsonList(c, "ok", dto.RubricsFromModels(rows), helper.BuildPagination(pg.Page, pg.PerPage, total))
}

func (ctl *RubricController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var ent model.RubricModel
	if err := ctl.DB.First(&ent, "rubric_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rúbrica no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la rúbrica")
	}
	return helper.JsonOK(c, "ok", dto.RubricFromModel(ent))
}

/* =========================
   COMPONENT
   POST /api/a/rubrics/:id/components
   Toda escritura de nivel inferior valida primero el padre.
   ========================= */

func (ctl *RubricController) CreateComponent(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	rubricID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var parent model.RubricModel
	if err := ctl.DB.First(&parent, "rubric_id = ?", rubricID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rúbrica no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la rúbrica")
	}

	var p dto.ComponentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel(parent.RubricID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Componente duplicado"))
	}
	return helper.JsonCreated(c, "Componente creado", dto.ComponentFromModel(ent))
}

func (ctl *RubricController) PatchComponent(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("component_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.RubricComponentModel
	if err := ctl.DB.First(&ent, "rubric_component_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Componente no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el componente")
	}

	var p dto.ComponentUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Componente duplicado"))
	}
	return helper.JsonUpdated(c, "Componente actualizado", dto.ComponentFromModel(ent))
}

func (ctl *RubricController) ListComponents(c *fiber.Ctx) error {
	rubricID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var rows []model.RubricComponentModel
	if err := ctl.DB.Where("rubric_component_rubric_id = ?", rubricID).
		Order("rubric_component_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar componentes")
	}
	return helper.JsonOK(c, "ok", dto.ComponentsFromModels(rows))
}

/* =========================
   CRITERION
   POST /api/a/rubrics/components/:component_id/criteria
   ========================= */

func (ctl *RubricController) CreateCriterion(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	componentID, err := uuid.Parse(c.Params("component_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var parent model.RubricComponentModel
	if err := ctl.DB.First(&parent, "rubric_component_id = ?", componentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Componente no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el componente")
	}

	var p dto.CriterionCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel(parent.RubricComponentID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Criterio duplicado"))
	}
	return helper.JsonCreated(c, "Criterio creado", dto.CriterionFromModel(ent))
}

func (ctl *RubricController) PatchCriterion(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("criterion_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.RubricCriterionModel
	if err := ctl.DB.First(&ent, "rubric_criterion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Criterio no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el criterio")
	}

	var p dto.CriterionUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Criterio duplicado"))
	}
	return helper.JsonUpdated(c, "Criterio actualizado", dto.CriterionFromModel(ent))
}

func (ctl *RubricController) ListCriteria(c *fiber.Ctx) error {
	componentID, err := uuid.Parse(c.Params("component_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var rows []model.RubricCriterionModel
	if err := ctl.DB.Where("rubric_criterion_component_id = ?", componentID).
		Order("rubric_criterion_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar criterios")
	}
	return helper.JsonOK(c, "ok", dto.CriteriaFromModels(rows))
}

/* =========================
   LEVEL
   POST /api/a/rubrics/:id/levels
   ========================= */

func (ctl *RubricController) CreateLevel(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	rubricID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var parent model.RubricModel
	if err := ctl.DB.First(&parent, "rubric_id = ?", rubricID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rúbrica no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la rúbrica")
	}

	var p dto.LevelCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel(parent.RubricID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Nivel duplicado"))
	}
	return helper.JsonCreated(c, "Nivel creado", dto.LevelFromModel(ent))
}

func (ctl *RubricController) PatchLevel(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("level_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.RubricLevelModel
	if err := ctl.DB.First(&ent, "rubric_level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nivel no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el nivel")
	}

	var p dto.LevelUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslatePGError(err, "Nivel duplicado"))
	}
	return helper.JsonUpdated(c, "Nivel actualizado", dto.LevelFromModel(ent))
}

func (ctl *RubricController) ListLevels(c *fiber.Ctx) error {
	rubricID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var rows []model.RubricLevelModel
	if err := ctl.DB.Where("rubric_level_rubric_id = ?", rubricID).
		Order("rubric_level_order ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar niveles")
	}
	return helper.JsonOK(c, "ok", dto.LevelsFromModels(rows))
}
