// file: internals/features/evaluation/service/assemble.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/evaluation/model"
	rubricService "titulacion_backend/internals/features/rubrics/service"
)

/* =========================================================
   Ensamblado: carga de la base el plan activo y las
   calificaciones de una asignación y los convierte en la
   entrada pura del agregador.
========================================================= */

// ActivePlanOf: plan activo del periodo de carrera, o 422.
func ActivePlanOf(tx *gorm.DB, careerPeriodID uuid.UUID) (model.EvaluationPlanModel, error) {
	var plan model.EvaluationPlanModel
	err := tx.First(&plan,
		"evaluation_plan_career_period_id = ? AND evaluation_plan_is_active = TRUE", careerPeriodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return plan, fiber.NewError(fiber.StatusUnprocessableEntity, "El periodo de carrera no tiene un plan de evaluación activo")
		}
		return plan, err
	}
	return plan, nil
}

// ActiveItemsOf: ítems activos del plan.
func ActiveItemsOf(tx *gorm.DB, planID uuid.UUID) ([]model.EvaluationItemModel, error) {
	var items []model.EvaluationItemModel
	err := tx.
		Where("evaluation_item_plan_id = ? AND evaluation_item_is_active = TRUE", planID).
		Order("evaluation_item_created_at ASC").
		Find(&items).Error
	return items, err
}

// ActiveWeightSum: suma de pesos de los ítems activos, excluyendo uno
// (para ediciones).
func ActiveWeightSum(tx *gorm.DB, planID uuid.UUID, excludeItemID uuid.UUID) (float64, error) {
	var sum *float64
	err := tx.Model(&model.EvaluationItemModel{}).
		Select("SUM(evaluation_item_weight_pct)").
		Where("evaluation_item_plan_id = ? AND evaluation_item_is_active = TRUE AND evaluation_item_id <> ?",
			planID, excludeItemID).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}

// meanOf promedia los valores enviados por los distintos contextos de
// evaluador para una misma clave (ítem, criterio).
func meanOf(rows []model.ScoreModel) *float64 {
	if len(rows) == 0 {
		return nil
	}
	var sum float64
	for _, r := range rows {
		sum += r.ScoreValue
	}
	v := Round2(sum / float64(len(rows)))
	return &v
}

// AssemblePlanItems arma la entrada del agregador para una asignación.
func AssemblePlanItems(tx *gorm.DB, assignmentID uuid.UUID, items []model.EvaluationItemModel) ([]PlanItem, error) {
	var scores []model.ScoreModel
	if err := tx.Where("score_assignment_id = ?", assignmentID).Find(&scores).Error; err != nil {
		return nil, err
	}
	// índice (ítem, criterio) → filas de todos los contextos
	type key struct{ item, criterion uuid.UUID }
	byKey := make(map[key][]model.ScoreModel, len(scores))
	for _, s := range scores {
		k := key{s.ScoreItemID, s.ScoreCriterionID}
		byKey[k] = append(byKey[k], s)
	}

	out := make([]PlanItem, 0, len(items))
	for _, it := range items {
		pi := PlanItem{
			Name:      it.EvaluationItemName,
			Kind:      it.EvaluationItemKind,
			WeightPct: it.EvaluationItemWeightPct,
			ActaSlot:  it.EvaluationItemActaSlot,
		}

		if it.EvaluationItemKind == model.ItemKindDirectScore {
			pi.Direct = meanOf(byKey[key{it.EvaluationItemID, uuid.Nil}])
			out = append(out, pi)
			continue
		}

		comps, err := rubricService.ComponentsOf(tx, *it.EvaluationItemRubricID)
		if err != nil {
			return nil, err
		}
		for _, comp := range comps {
			criteria, err := rubricService.CriteriaOf(tx, comp.ID)
			if err != nil {
				return nil, err
			}
			cs := ComponentScores{Name: comp.Name, WeightPct: comp.WeightPct}
			for _, cr := range criteria {
				cs.Criteria = append(cs.Criteria, CriterionScore{
					Name:  cr.Name,
					Value: meanOf(byKey[key{it.EvaluationItemID, cr.ID}]),
				})
			}
			pi.Components = append(pi.Components, cs)
		}
		out = append(out, pi)
	}
	return out, nil
}
