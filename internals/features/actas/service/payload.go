// file: internals/features/actas/service/payload.go
package service

import (
	"time"

	"github.com/google/uuid"

	evalModel "titulacion_backend/internals/features/evaluation/model"
	evalService "titulacion_backend/internals/features/evaluation/service"
)

/* =========================================================
   RenderPayload — lo que consume el renderizador externo de
   documentos. El acta guarda lo mismo; esto es la vista
   estable hacia afuera.
========================================================= */

type RenderPayload struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	StudentName  string    `json:"student_name"`
	CareerName   string    `json:"career_name"`

	NotaTeorica         *float64 `json:"nota_teorica,omitempty"`
	NotaPracticaEscrita *float64 `json:"nota_practica_escrita,omitempty"`
	NotaPracticaOral    *float64 `json:"nota_practica_oral,omitempty"`

	NotaFinal    float64   `json:"nota_final"`
	Calificacion string    `json:"calificacion"`
	Aprobado     bool      `json:"aprobado"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// SlotSubtotals reparte los subtotales del agregado en las tres casillas
// del acta según el slot declarado en cada ítem. Ítems sin slot solo
// aportan a la nota final.
func SlotSubtotals(agg evalService.Aggregate) (teorica, escrita, oral *float64) {
	for _, it := range agg.Items {
		if it.ActaSlot == nil {
			continue
		}
		v := it.Subtotal
		switch *it.ActaSlot {
		case evalModel.ActaSlotTeorica:
			teorica = &v
		case evalModel.ActaSlotPracticaEscrita:
			escrita = &v
		case evalModel.ActaSlotPracticaOral:
			oral = &v
		}
	}
	return teorica, escrita, oral
}
