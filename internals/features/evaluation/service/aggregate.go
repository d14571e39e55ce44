// file: internals/features/evaluation/service/aggregate.go
package service

import (
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"

	"titulacion_backend/internals/features/evaluation/model"
)

/* =========================================================
   Agregador de calificaciones. Función pura sobre las
   calificaciones ya cargadas: calcular dos veces con las
   mismas entradas da el mismo resultado y no muta nada.

   - DIRECT_SCORE: el subtotal es el valor enviado.
   - RUBRIC_BASED: media de los valores de nivel elegidos
     por criterio dentro de cada componente, combinadas por
     los pesos internos de la rúbrica.
   - Final = Σ(subtotal × peso global)/100, redondeado a
     dos decimales. Aprobado ⇔ final ≥ umbral del periodo.
========================================================= */

const weightEpsilon = 0.005

type CriterionScore struct {
	Name  string
	Value *float64 // nil = sin calificación enviada
}

type ComponentScores struct {
	Name      string
	WeightPct float64
	Criteria  []CriterionScore
}

type PlanItem struct {
	Name       string
	Kind       model.ItemKind
	WeightPct  float64
	ActaSlot   *model.ActaSlot
	Direct     *float64          // DIRECT_SCORE
	Components []ComponentScores // RUBRIC_BASED
}

type ItemSubtotal struct {
	Name      string
	WeightPct float64
	ActaSlot  *model.ActaSlot
	Subtotal  float64
}

type Aggregate struct {
	Items     []ItemSubtotal
	Final     float64
	Threshold float64
	Approved  bool
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func missingScore(item string) error {
	return fiber.NewError(fiber.StatusUnprocessableEntity,
		fmt.Sprintf("No se puede calcular: falta la calificación del ítem %s", item))
}

// itemSubtotal resuelve un ítem a su valor 0–20.
func itemSubtotal(it PlanItem) (float64, error) {
	if it.Kind == model.ItemKindDirectScore {
		if it.Direct == nil {
			return 0, missingScore(it.Name)
		}
		return *it.Direct, nil
	}

	// RUBRIC_BASED: media por componente, combinada por pesos internos.
	var weighted, weightSum float64
	for _, comp := range it.Components {
		if len(comp.Criteria) == 0 {
			return 0, missingScore(it.Name)
		}
		var sum float64
		for _, cr := range comp.Criteria {
			if cr.Value == nil {
				return 0, missingScore(it.Name)
			}
			sum += *cr.Value
		}
		mean := sum / float64(len(comp.Criteria))
		weighted += mean * comp.WeightPct
		weightSum += comp.WeightPct
	}
	if weightSum <= 0 {
		return 0, missingScore(it.Name)
	}
	return weighted / weightSum, nil
}

// AggregatePlan calcula los subtotales y la nota final del plan.
func AggregatePlan(items []PlanItem, threshold float64) (Aggregate, error) {
	if len(items) == 0 {
		return Aggregate{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El plan no tiene ítems activos")
	}

	var weightSum float64
	for _, it := range items {
		weightSum += it.WeightPct
	}
	if math.Abs(weightSum-100.0) > weightEpsilon {
		return Aggregate{}, fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Los pesos del plan suman %.2f%%; deben sumar exactamente 100%% para calcular", weightSum))
	}

	out := Aggregate{Threshold: threshold}
	var final float64
	for _, it := range items {
		sub, err := itemSubtotal(it)
		if err != nil {
			return Aggregate{}, err
		}
		sub = Round2(sub)
		out.Items = append(out.Items, ItemSubtotal{
			Name:      it.Name,
			WeightPct: it.WeightPct,
			ActaSlot:  it.ActaSlot,
			Subtotal:  sub,
		})
		final += sub * it.WeightPct
	}
	out.Final = Round2(final / 100.0)
	out.Approved = out.Final >= threshold
	return out, nil
}
