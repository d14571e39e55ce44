// file: internals/features/tribunals/service/composition.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	raterService "titulacion_backend/internals/features/people/raters/service"
	"titulacion_backend/internals/features/tribunals/model"
)

/* =========================================================
   Validación de composición del tribunal. Puro sobre los
   nombramientos ya cargados: el caller resuelve cada
   RaterRef y esto decide.
========================================================= */

type CandidateMember struct {
	Designation model.Designation
	Rater       raterService.RaterRef
}

// ValidateComposition: exactamente tres designaciones (presidente y dos
// vocales), nombramientos distintos dos a dos, cada uno activo y de la
// carrera del tribunal. El primer incumplimiento aborta nombrando la
// designación ofensora.
func ValidateComposition(careerID uuid.UUID, members []CandidateMember) error {
	if len(members) != len(model.AllDesignations) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "El tribunal requiere presidente y dos vocales")
	}

	seenDesignation := make(map[model.Designation]bool, 3)
	seenRater := make(map[uuid.UUID]model.Designation, 3)

	for _, m := range members {
		if !m.Designation.Valid() {
			return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Designación inválida: %s", m.Designation))
		}
		if seenDesignation[m.Designation] {
			return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Designación repetida: %s", m.Designation))
		}
		seenDesignation[m.Designation] = true

		if prev, dup := seenRater[m.Rater.ID]; dup {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("El mismo docente no puede ocupar %s y %s", prev, m.Designation))
		}
		seenRater[m.Rater.ID] = m.Designation

		if !m.Rater.Active {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("El nombramiento para %s está inactivo", m.Designation))
		}
		if m.Rater.CareerID != careerID {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("El docente designado como %s no pertenece a la carrera del tribunal", m.Designation))
		}
	}
	return nil
}

/* =========================================================
   Reemplazo de mesa. Las filas anteriores no se borran:
   quedan inactivas como histórico y entran tres nuevas.
========================================================= */

type BoardReplacement struct {
	DeactivateIDs []uuid.UUID
	NewRows       []model.TribunalMemberModel
}

// PlanBoardReplacement decide el reemplazo sobre las filas ya cargadas.
// Filas ya inactivas (reemplazos previos) no se tocan.
func PlanBoardReplacement(tribunalID uuid.UUID, current []model.TribunalMemberModel, members []CandidateMember) BoardReplacement {
	var out BoardReplacement
	for _, row := range current {
		if row.TribunalMemberIsActive {
			out.DeactivateIDs = append(out.DeactivateIDs, row.TribunalMemberID)
		}
	}
	for _, m := range members {
		out.NewRows = append(out.NewRows, model.TribunalMemberModel{
			TribunalMemberTribunalID:  tribunalID,
			TribunalMemberRaterID:     m.Rater.ID,
			TribunalMemberDesignation: m.Designation,
			TribunalMemberIsActive:    true,
		})
	}
	return out
}

// ValidateAssignmentScope: tribunal, estudiante y franja deben resolver al
// mismo periodo de carrera.
func ValidateAssignmentScope(tribunalCP, studentCP, slotCP uuid.UUID) error {
	if studentCP != tribunalCP {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "El estudiante no pertenece al periodo de carrera del tribunal")
	}
	if slotCP != tribunalCP {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "La franja no pertenece al periodo de carrera del tribunal")
	}
	return nil
}
