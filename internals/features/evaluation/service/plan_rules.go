// file: internals/features/evaluation/service/plan_rules.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"titulacion_backend/internals/features/evaluation/model"
)

/* =========================================================
   Reglas puras del plan de evaluación.
========================================================= */

// ValidateItemKind: DIRECT_SCORE nunca lleva rúbrica, RUBRIC_BASED siempre.
func ValidateItemKind(kind model.ItemKind, rubricID *uuid.UUID) error {
	switch kind {
	case model.ItemKindDirectScore:
		if rubricID != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Un ítem de nota directa no puede llevar rúbrica")
		}
	case model.ItemKindRubricBased:
		if rubricID == nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Un ítem basado en rúbrica requiere una rúbrica")
		}
	default:
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Tipo de ítem inválido")
	}
	return nil
}

// ValidateRubricPeriod: la rúbrica debe ser del periodo académico del plan.
func ValidateRubricPeriod(rubricPeriodID, planPeriodID uuid.UUID) error {
	if rubricPeriodID != planPeriodID {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "La rúbrica no corresponde a este periodo")
	}
	return nil
}

// ValidateWeightBudget: los pesos de los ítems activos no pueden pasar de
// 100 al crear o editar. Que sumen exactamente 100 solo se exige al agregar.
func ValidateWeightBudget(existingSum, candidate float64) error {
	if total := existingSum + candidate; total > 100.0+weightEpsilon {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Los pesos del plan sumarían %.2f%%; el máximo es 100%%", total))
	}
	return nil
}

// ValidateDirectValue: nota directa acotada a la escala 0–20.
func ValidateDirectValue(v float64) error {
	if v < 0 || v > 20 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "La nota debe estar entre 0 y 20")
	}
	return nil
}
