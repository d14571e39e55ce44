// file: internals/features/evaluation/controller/item_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cpService "titulacion_backend/internals/features/academics/career_periods/service"
	"titulacion_backend/internals/features/evaluation/dto"
	"titulacion_backend/internals/features/evaluation/model"
	"titulacion_backend/internals/features/evaluation/service"
	rubricService "titulacion_backend/internals/features/rubrics/service"
	helper "titulacion_backend/internals/helpers"
	helperAuth "titulacion_backend/internals/helpers/auth"
)

// loadPlanScoped carga el plan y verifica al admin de carrera.
func (ctl *EvaluationController) loadPlanScoped(c *fiber.Ctx, planID uuid.UUID) (model.EvaluationPlanModel, cpService.CareerPeriodRef, error) {
	var plan model.EvaluationPlanModel
	if err := ctl.DB.First(&plan, "evaluation_plan_id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return plan, cpService.CareerPeriodRef{}, fiber.NewError(fiber.StatusNotFound, "Plan no encontrado")
		}
		return plan, cpService.CareerPeriodRef{}, err
	}
	cp, err := cpService.GetCareerPeriod(ctl.DB, plan.EvaluationPlanCareerPeriodID)
	if err != nil {
		return plan, cp, err
	}
	if err := helperAuth.EnsureCareerAdmin(c, cp.CareerID, "planes de evaluación"); err != nil {
		return plan, cp, err
	}
	return plan, cp, nil
}

/* =========================
   CREATE ITEM
   POST /api/a/evaluation-plans/:id/items
   kind↔rúbrica, rúbrica-del-periodo y presupuesto de pesos
   dentro de la transacción.
   ========================= */

func (ctl *EvaluationController) CreateItem(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	plan, cp, err := ctl.loadPlanScoped(c, planID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.ItemCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.ValidateItemKind(p.EvaluationItemKind, p.EvaluationItemRubricID); err != nil {
		return helper.FromFiberError(c, err)
	}

	ent := p.ToModel(plan.EvaluationPlanID)

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.EvaluationItemRubricID != nil {
			rubricPeriod, err := rubricService.RubricPeriodOf(tx, *ent.EvaluationItemRubricID)
			if err != nil {
				return err
			}
			if err := service.ValidateRubricPeriod(rubricPeriod, cp.PeriodID); err != nil {
				return err
			}
		}
		sum, err := service.ActiveWeightSum(tx, plan.EvaluationPlanID, uuid.Nil)
		if err != nil {
			return err
		}
		if err := service.ValidateWeightBudget(sum, ent.EvaluationItemWeightPct); err != nil {
			return err
		}
		if err := tx.Create(&ent).Error; err != nil {
			return helper.TranslatePGError(err, "Ítem duplicado")
		}
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "Ítem creado", dto.ItemFromModel(ent))
}

/* =========================
   UPDATE ITEM
   PATCH /api/a/evaluation-plans/items/:item_id
   El tipo y la rúbrica del ítem son inmutables; cambiar de
   kind exige crear otro ítem.
   ========================= */

func (ctl *EvaluationController) PatchItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var ent model.EvaluationItemModel
	if err := ctl.DB.First(&ent, "evaluation_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ítem no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el ítem")
	}
	if _, _, err := ctl.loadPlanScoped(c, ent.EvaluationItemPlanID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.ItemUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.ApplyUpdates(&ent)

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if ent.EvaluationItemIsActive {
			sum, err := service.ActiveWeightSum(tx, ent.EvaluationItemPlanID, ent.EvaluationItemID)
			if err != nil {
				return err
			}
			if err := service.ValidateWeightBudget(sum, ent.EvaluationItemWeightPct); err != nil {
				return err
			}
		}
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Ítem actualizado", dto.ItemFromModel(ent))
}

func (ctl *EvaluationController) ListItems(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var rows []model.EvaluationItemModel
	if err := ctl.DB.Where("evaluation_item_plan_id = ?", planID).
		Order("evaluation_item_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo listar ítems")
	}
	return helper.JsonOK(c, "ok", dto.ItemsFromModels(rows))
}

/* =========================
   BIND COMPONENT RATER
   PUT /api/a/evaluation-plans/items/:item_id/component-raters
   Solo ítems RUBRIC_BASED; el componente debe ser de la
   rúbrica del ítem. Upsert: revincular sobreescribe.
   ========================= */

func (ctl *EvaluationController) BindComponentRater(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var item model.EvaluationItemModel
	if err := ctl.DB.First(&item, "evaluation_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ítem no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el ítem")
	}
	if _, _, err := ctl.loadPlanScoped(c, item.EvaluationItemPlanID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if item.EvaluationItemKind != model.ItemKindRubricBased {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Solo los ítems basados en rúbrica reparten componentes")
	}

	var p dto.ComponentRaterBindDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	var ent model.ItemComponentRaterModel

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		comp, err := rubricService.GetComponent(tx, p.ItemComponentRaterComponentID)
		if err != nil {
			return err
		}
		if comp.RubricID != *item.EvaluationItemRubricID {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "El componente no pertenece a la rúbrica del ítem")
		}

		ent = model.ItemComponentRaterModel{
			ItemComponentRaterItemID:      item.EvaluationItemID,
			ItemComponentRaterComponentID: comp.ID,
			ItemComponentRaterDesignation: p.ItemComponentRaterDesignation,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "item_component_rater_item_id"},
				{Name: "item_component_rater_component_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"item_component_rater_designation", "item_component_rater_updated_at"}),
		}).Create(&ent).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "Componente vinculado", dto.ComponentRaterFromModel(ent))
}
