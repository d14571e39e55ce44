// file: internals/features/actas/service/grade_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evalModel "titulacion_backend/internals/features/evaluation/model"
	evalService "titulacion_backend/internals/features/evaluation/service"
)

func TestGradeText(t *testing.T) {
	cases := []struct {
		final float64
		want  string
	}{
		{20, GradeSobresaliente},
		{19, GradeSobresaliente},
		{18.99, GradeMuyBuena},
		{16, GradeMuyBuena},
		{15.99, GradeBuena},
		{14, GradeBuena},
		{13.99, GradeRegular},
		{12, GradeRegular},
		{11.99, GradeInsuficiente},
		{0, GradeInsuficiente},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeText(tc.final), "final=%.2f", tc.final)
	}
}

func TestSlotSubtotals(t *testing.T) {
	teo := evalModel.ActaSlotTeorica
	esc := evalModel.ActaSlotPracticaEscrita
	oral := evalModel.ActaSlotPracticaOral

	agg := evalService.Aggregate{
		Items: []evalService.ItemSubtotal{
			{Name: "Teórico", ActaSlot: &teo, Subtotal: 16},
			{Name: "Práctica Escrita", ActaSlot: &esc, Subtotal: 14},
			{Name: "Práctica Oral", ActaSlot: &oral, Subtotal: 18},
			{Name: "Sin casilla", Subtotal: 10},
		},
	}

	gotTeo, gotEsc, gotOral := SlotSubtotals(agg)
	require.NotNil(t, gotTeo)
	require.NotNil(t, gotEsc)
	require.NotNil(t, gotOral)
	assert.InDelta(t, 16, *gotTeo, 0.001)
	assert.InDelta(t, 14, *gotEsc, 0.001)
	assert.InDelta(t, 18, *gotOral, 0.001)
}

func TestSlotSubtotals_PlanSinCasillas(t *testing.T) {
	agg := evalService.Aggregate{
		Items: []evalService.ItemSubtotal{{Name: "Único", Subtotal: 15}},
	}
	teo, esc, oral := SlotSubtotals(agg)
	assert.Nil(t, teo)
	assert.Nil(t, esc)
	assert.Nil(t, oral)
}
