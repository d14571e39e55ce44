// file: internals/features/actas/service/build.go
package service

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"titulacion_backend/internals/features/actas/model"
	evalService "titulacion_backend/internals/features/evaluation/service"
)

// BuildActa materializa la fila de acta de una agregación. La clave
// natural es siempre la asignación: regenerar produce la misma clave y
// el upsert del caller actualiza la fila existente en vez de crear otra.
func BuildActa(assignmentID uuid.UUID, agg evalService.Aggregate, generatedAt time.Time) (model.ActaModel, error) {
	breakdown, err := sonic.Marshal(agg.Items)
	if err != nil {
		return model.ActaModel{}, err
	}
	teorica, escrita, oral := SlotSubtotals(agg)

	return model.ActaModel{
		ActaAssignmentID:        assignmentID,
		ActaNotaTeorica:         teorica,
		ActaNotaPracticaEscrita: escrita,
		ActaNotaPracticaOral:    oral,
		ActaNotaFinal:           agg.Final,
		ActaCalificacion:        GradeText(agg.Final),
		ActaAprobado:            agg.Approved,
		ActaBreakdown:           breakdown,
		ActaStatus:              model.ActaStatusDraft,
		ActaGeneratedAt:         generatedAt,
		ActaIsActive:            true,
	}, nil
}

// ActaRecalcColumns: columnas que el upsert reescribe cuando la asignación
// ya tiene acta. Todo lo calculado se pisa; la clave queda intacta.
var ActaRecalcColumns = []string{
	"acta_nota_teorica", "acta_nota_practica_escrita", "acta_nota_practica_oral",
	"acta_nota_final", "acta_calificacion", "acta_aprobado", "acta_breakdown",
	"acta_status", "acta_generated_at", "acta_is_active", "acta_updated_at",
}
