// file: internals/features/actas/dto/acta_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"titulacion_backend/internals/features/actas/model"
)

// =======================
// Response DTO
// =======================

type ActaResponseDTO struct {
	ActaID           uuid.UUID `json:"acta_id"`
	ActaAssignmentID uuid.UUID `json:"acta_assignment_id"`

	ActaNotaTeorica         *float64 `json:"acta_nota_teorica,omitempty"`
	ActaNotaPracticaEscrita *float64 `json:"acta_nota_practica_escrita,omitempty"`
	ActaNotaPracticaOral    *float64 `json:"acta_nota_practica_oral,omitempty"`

	ActaNotaFinal    float64          `json:"acta_nota_final"`
	ActaCalificacion string           `json:"acta_calificacion"`
	ActaAprobado     bool             `json:"acta_aprobado"`
	ActaBreakdown    datatypes.JSON   `json:"acta_breakdown,omitempty"`
	ActaStatus       model.ActaStatus `json:"acta_status"`
	ActaGeneratedAt  time.Time        `json:"acta_generated_at"`
	ActaIsActive     bool             `json:"acta_is_active"`
}

func FromModel(ent model.ActaModel) ActaResponseDTO {
	return ActaResponseDTO{
		ActaID:                  ent.ActaID,
		ActaAssignmentID:        ent.ActaAssignmentID,
		ActaNotaTeorica:         ent.ActaNotaTeorica,
		ActaNotaPracticaEscrita: ent.ActaNotaPracticaEscrita,
		ActaNotaPracticaOral:    ent.ActaNotaPracticaOral,
		ActaNotaFinal:           ent.ActaNotaFinal,
		ActaCalificacion:        ent.ActaCalificacion,
		ActaAprobado:            ent.ActaAprobado,
		ActaBreakdown:           ent.ActaBreakdown,
		ActaStatus:              ent.ActaStatus,
		ActaGeneratedAt:         ent.ActaGeneratedAt,
		ActaIsActive:            ent.ActaIsActive,
	}
}
