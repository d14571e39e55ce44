// file: internals/features/evaluation/service/aggregate_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titulacion_backend/internals/features/evaluation/model"
)

func f(v float64) *float64 { return &v }

func directItem(name string, weight float64, value *float64) PlanItem {
	return PlanItem{
		Name:      name,
		Kind:      model.ItemKindDirectScore,
		WeightPct: weight,
		Direct:    value,
	}
}

// Escenario de referencia: teórico 30%, práctica escrita 35%, práctica
// oral 35%, con notas 16, 14 y 18. Final 16.00; umbral 14 → aprobado.
func TestAggregatePlan_EscenarioDirecto(t *testing.T) {
	items := []PlanItem{
		directItem("Teórico", 30, f(16)),
		directItem("Práctica Escrita", 35, f(14)),
		directItem("Práctica Oral", 35, f(18)),
	}

	agg, err := AggregatePlan(items, 14.0)
	require.NoError(t, err)

	assert.InDelta(t, 16.00, agg.Final, 0.001)
	assert.True(t, agg.Approved)
	require.Len(t, agg.Items, 3)
	assert.InDelta(t, 16.0, agg.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 14.0, agg.Items[1].Subtotal, 0.001)
	assert.InDelta(t, 18.0, agg.Items[2].Subtotal, 0.001)
}

func TestAggregatePlan_Reprobado(t *testing.T) {
	items := []PlanItem{
		directItem("Teórico", 50, f(12)),
		directItem("Práctico", 50, f(13)),
	}
	agg, err := AggregatePlan(items, 14.0)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, agg.Final, 0.001)
	assert.False(t, agg.Approved)
}

func TestAggregatePlan_UmbralExactoAprueba(t *testing.T) {
	items := []PlanItem{directItem("Único", 100, f(14))}
	agg, err := AggregatePlan(items, 14.0)
	require.NoError(t, err)
	assert.True(t, agg.Approved)
}

func TestAggregatePlan_FaltaCalificacion(t *testing.T) {
	items := []PlanItem{
		directItem("Teórico", 50, f(16)),
		directItem("Práctico", 50, nil),
	}
	_, err := AggregatePlan(items, 14.0)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "Práctico", "el error nombra el ítem faltante")
}

func TestAggregatePlan_PesosNoSuman100(t *testing.T) {
	items := []PlanItem{
		directItem("Teórico", 40, f(16)),
		directItem("Práctico", 40, f(15)),
	}
	_, err := AggregatePlan(items, 14.0)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "100%")
}

func TestAggregatePlan_SinItems(t *testing.T) {
	_, err := AggregatePlan(nil, 14.0)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}

func TestAggregatePlan_RubricaPorComponentes(t *testing.T) {
	// Dos componentes 60/40. Medias: (18+16)/2 = 17 y (12+14)/2 = 13.
	// Subtotal = (17*60 + 13*40)/100 = 15.40.
	rubricItem := PlanItem{
		Name:      "Defensa",
		Kind:      model.ItemKindRubricBased,
		WeightPct: 100,
		Components: []ComponentScores{
			{
				Name: "Contenido", WeightPct: 60,
				Criteria: []CriterionScore{
					{Name: "Dominio", Value: f(18)},
					{Name: "Rigor", Value: f(16)},
				},
			},
			{
				Name: "Exposición", WeightPct: 40,
				Criteria: []CriterionScore{
					{Name: "Claridad", Value: f(12)},
					{Name: "Tiempo", Value: f(14)},
				},
			},
		},
	}

	agg, err := AggregatePlan([]PlanItem{rubricItem}, 14.0)
	require.NoError(t, err)
	assert.InDelta(t, 15.40, agg.Final, 0.001)
	assert.True(t, agg.Approved)
}

func TestAggregatePlan_RubricaCriterioSinNota(t *testing.T) {
	rubricItem := PlanItem{
		Name:      "Defensa",
		Kind:      model.ItemKindRubricBased,
		WeightPct: 100,
		Components: []ComponentScores{
			{
				Name: "Contenido", WeightPct: 100,
				Criteria: []CriterionScore{
					{Name: "Dominio", Value: f(18)},
					{Name: "Rigor", Value: nil},
				},
			},
		},
	}
	_, err := AggregatePlan([]PlanItem{rubricItem}, 14.0)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
	assert.Contains(t, fe.Message, "Defensa")
}

// Con las mismas entradas el agregador debe dar lo mismo y no mutarlas.
func TestAggregatePlan_Idempotente(t *testing.T) {
	items := []PlanItem{
		directItem("Teórico", 30, f(16)),
		directItem("Práctica Escrita", 35, f(14)),
		directItem("Práctica Oral", 35, f(18)),
	}

	first, err := AggregatePlan(items, 14.0)
	require.NoError(t, err)
	second, err := AggregatePlan(items, 14.0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, 16.0, *items[0].Direct, 0.001, "las entradas no se mutan")
}

func TestAggregatePlan_Redondeo(t *testing.T) {
	// 16.666... * 100% → 16.67
	items := []PlanItem{
		{
			Name: "Defensa", Kind: model.ItemKindRubricBased, WeightPct: 100,
			Components: []ComponentScores{
				{
					Name: "Único", WeightPct: 100,
					Criteria: []CriterionScore{
						{Name: "A", Value: f(20)},
						{Name: "B", Value: f(15)},
						{Name: "C", Value: f(15)},
					},
				},
			},
		},
	}
	agg, err := AggregatePlan(items, 14.0)
	require.NoError(t, err)
	assert.InDelta(t, 16.67, agg.Final, 0.001)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 16.67, Round2(16.666666), 0.0001)
	assert.InDelta(t, 14.00, Round2(13.996), 0.0001)
	assert.InDelta(t, 13.99, Round2(13.994), 0.0001)
	assert.InDelta(t, 0.0, Round2(0), 0.0001)
}
