// file: internals/features/rubrics/controller/cell_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"titulacion_backend/internals/features/rubrics/dto"
	"titulacion_backend/internals/features/rubrics/model"
	"titulacion_backend/internals/features/rubrics/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

/* =========================
   CELL
   PUT /api/a/rubrics/cells
   Upsert por tripleta. El cruce transitivo de rúbricas se
   rechaza con 409 antes de tocar la tabla.
   ========================= */

func (ctl *RubricController) UpsertCell(c *fiber.Ctx) error {
	if err := helperAuth.EnsureGlobalAdmin(c, "rúbricas"); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.CellUpsertDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.ValidateCellText(p.RubricCellText); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.RubricCellModel

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		comp, err := service.GetComponent(tx, p.RubricCellComponentID)
		if err != nil {
			return err
		}
		crit, err := service.GetCriterion(tx, p.RubricCellCriterionID)
		if err != nil {
			return err
		}
		lvl, err := service.GetLevel(tx, p.RubricCellLevelID)
		if err != nil {
			return err
		}
		if err := service.ValidateCellChain(service.ChainRefs{
			ComponentRubricID:  comp.RubricID,
			CriterionComponent: crit.ComponentID,
			ComponentID:        comp.ID,
			LevelRubricID:      lvl.RubricID,
		}); err != nil {
			return err
		}

		ent = model.RubricCellModel{
			RubricCellComponentID: comp.ID,
			RubricCellCriterionID: crit.ID,
			RubricCellLevelID:     lvl.ID,
			RubricCellText:        p.RubricCellText,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "rubric_cell_component_id"},
				{Name: "rubric_cell_criterion_id"},
				{Name: "rubric_cell_level_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"rubric_cell_text", "rubric_cell_updated_at"}),
		}).Create(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Celda guardada", dto.CellFromModel(ent))
}

/* =========================
   GET /api/a/rubrics/components/:component_id/cells
   ========================= */

func (ctl *RubricController) ListCells(c *fiber.Ctx) error {
	componentID, err := uuid.Parse(c.Params("component_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var rows []model.RubricCellModel
	if err := ctl.DB.Where("rubric_cell_component_id = ?", componentID).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar celdas")
	}
	return helper.JsonOK(c, "ok", dto.CellsFromModels(rows))
}
