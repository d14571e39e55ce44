// file: internals/features/rubrics/service/chain.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================================================
   Validación de la cadena componente → criterio → nivel.
   Puro: el caller carga las proyecciones y esto decide.
   Un cruce de rúbricas es corrupción del modelo, no un
   payload malo, por eso 409 y no 422.
========================================================= */

type ChainRefs struct {
	ComponentRubricID  uuid.UUID
	CriterionComponent uuid.UUID // componente dueño del criterio
	ComponentID        uuid.UUID
	LevelRubricID      uuid.UUID
}

// ValidateCellChain: el criterio debe colgar del componente y el nivel
// debe pertenecer a la misma rúbrica que el componente.
func ValidateCellChain(refs ChainRefs) error {
	if refs.CriterionComponent != refs.ComponentID {
		return fiber.NewError(fiber.StatusConflict, "El criterio no pertenece al componente indicado")
	}
	if refs.LevelRubricID != refs.ComponentRubricID {
		return fiber.NewError(fiber.StatusConflict, "El nivel pertenece a otra rúbrica")
	}
	return nil
}

// ValidateCellText: una celda sin descripción no sirve como pick-list.
func ValidateCellText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "La celda requiere un texto descriptivo")
	}
	return nil
}
