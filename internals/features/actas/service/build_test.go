// file: internals/features/actas/service/build_test.go
package service

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titulacion_backend/internals/features/actas/model"
	evalModel "titulacion_backend/internals/features/evaluation/model"
	evalService "titulacion_backend/internals/features/evaluation/service"
)

func sampleAggregate(final float64, approved bool) evalService.Aggregate {
	teo := evalModel.ActaSlotTeorica
	oral := evalModel.ActaSlotPracticaOral
	return evalService.Aggregate{
		Items: []evalService.ItemSubtotal{
			{Name: "Teórico", WeightPct: 60, ActaSlot: &teo, Subtotal: 16},
			{Name: "Oral", WeightPct: 40, ActaSlot: &oral, Subtotal: 14},
		},
		Final:     final,
		Threshold: 14,
		Approved:  approved,
	}
}

func TestBuildActa_RegenerarProduceLaMismaFila(t *testing.T) {
	assignmentID := uuid.New()
	at := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	agg := sampleAggregate(15.20, true)

	first, err := BuildActa(assignmentID, agg, at)
	require.NoError(t, err)
	second, err := BuildActa(assignmentID, agg, at)
	require.NoError(t, err)

	// misma clave, mismo contenido: el upsert no tiene nada nuevo que escribir
	assert.Equal(t, first, second)
	assert.Equal(t, assignmentID, first.ActaAssignmentID)
	assert.Equal(t, model.ActaStatusDraft, first.ActaStatus)
	assert.True(t, first.ActaIsActive)
}

func TestBuildActa_RecalculoConservaLaClave(t *testing.T) {
	assignmentID := uuid.New()
	at := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	draft, err := BuildActa(assignmentID, sampleAggregate(13.50, false), at)
	require.NoError(t, err)
	redone, err := BuildActa(assignmentID, sampleAggregate(15.20, true), at.AddDate(0, 0, 2))
	require.NoError(t, err)

	// el acta corregida cae sobre la misma fila; cambian solo los campos calculados
	assert.Equal(t, draft.ActaAssignmentID, redone.ActaAssignmentID)
	assert.NotEqual(t, draft.ActaNotaFinal, redone.ActaNotaFinal)
	assert.NotEqual(t, draft.ActaCalificacion, redone.ActaCalificacion)
	assert.False(t, draft.ActaAprobado)
	assert.True(t, redone.ActaAprobado)
	assert.Equal(t, model.ActaStatusDraft, redone.ActaStatus, "regenerar un borrador deja otro borrador")

	for _, col := range []string{
		"acta_nota_final", "acta_calificacion", "acta_aprobado",
		"acta_breakdown", "acta_generated_at", "acta_status",
	} {
		assert.Contains(t, ActaRecalcColumns, col)
	}
	assert.NotContains(t, ActaRecalcColumns, "acta_assignment_id", "la clave natural nunca se pisa")
	assert.NotContains(t, ActaRecalcColumns, "acta_id")
}

func TestBuildActa_DesgloseYCasillas(t *testing.T) {
	agg := sampleAggregate(15.20, true)
	ent, err := BuildActa(uuid.New(), agg, time.Now())
	require.NoError(t, err)

	require.NotNil(t, ent.ActaNotaTeorica)
	assert.InDelta(t, 16, *ent.ActaNotaTeorica, 0.001)
	assert.Nil(t, ent.ActaNotaPracticaEscrita)
	require.NotNil(t, ent.ActaNotaPracticaOral)
	assert.InDelta(t, 14, *ent.ActaNotaPracticaOral, 0.001)

	var items []evalService.ItemSubtotal
	require.NoError(t, sonic.Unmarshal(ent.ActaBreakdown, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Teórico", items[0].Name)
	assert.InDelta(t, 60, items[0].WeightPct, 0.001)
}
