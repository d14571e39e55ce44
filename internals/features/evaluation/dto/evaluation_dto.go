// file: internals/features/evaluation/dto/evaluation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/evaluation/model"
	"titulacion_backend/internals/features/evaluation/service"
)

// =======================
// Plan
// =======================

type PlanCreateDTO struct {
	EvaluationPlanCareerPeriodID uuid.UUID `json:"evaluation_plan_career_period_id" validate:"required"`
	EvaluationPlanName           string    `json:"evaluation_plan_name"             validate:"required,min=3,max=160"`
}

type PlanUpdateDTO struct {
	EvaluationPlanName     *string `json:"evaluation_plan_name,omitempty" validate:"omitempty,min=3,max=160"`
	EvaluationPlanIsActive *bool   `json:"evaluation_plan_is_active,omitempty"`
}

type PlanResponseDTO struct {
	EvaluationPlanID             uuid.UUID `json:"evaluation_plan_id"`
	EvaluationPlanCareerPeriodID uuid.UUID `json:"evaluation_plan_career_period_id"`
	EvaluationPlanName           string    `json:"evaluation_plan_name"`
	EvaluationPlanIsActive       bool      `json:"evaluation_plan_is_active"`
	EvaluationPlanCreatedAt      time.Time `json:"evaluation_plan_created_at"`

	EvaluationItems []ItemResponseDTO `json:"evaluation_items,omitempty"`
}

func (p *PlanCreateDTO) Normalize() {
	p.EvaluationPlanName = strings.TrimSpace(p.EvaluationPlanName)
}

func (p *PlanCreateDTO) ToModel() model.EvaluationPlanModel {
	return model.EvaluationPlanModel{
		EvaluationPlanCareerPeriodID: p.EvaluationPlanCareerPeriodID,
		EvaluationPlanName:           p.EvaluationPlanName,
		EvaluationPlanIsActive:       true,
	}
}

func (u *PlanUpdateDTO) ApplyUpdates(ent *model.EvaluationPlanModel) {
	if u.EvaluationPlanName != nil {
		ent.EvaluationPlanName = strings.TrimSpace(*u.EvaluationPlanName)
	}
	if u.EvaluationPlanIsActive != nil {
		ent.EvaluationPlanIsActive = *u.EvaluationPlanIsActive
	}
}

func PlanFromModel(ent model.EvaluationPlanModel) PlanResponseDTO {
	out := PlanResponseDTO{
		EvaluationPlanID:             ent.EvaluationPlanID,
		EvaluationPlanCareerPeriodID: ent.EvaluationPlanCareerPeriodID,
		EvaluationPlanName:           ent.EvaluationPlanName,
		EvaluationPlanIsActive:       ent.EvaluationPlanIsActive,
		EvaluationPlanCreatedAt:      ent.EvaluationPlanCreatedAt,
	}
	for _, it := range ent.EvaluationItems {
		out.EvaluationItems = append(out.EvaluationItems, ItemFromModel(it))
	}
	return out
}

func PlansFromModels(list []model.EvaluationPlanModel) []PlanResponseDTO {
	out := make([]PlanResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, PlanFromModel(m))
	}
	return out
}

// =======================
// Item
// =======================

type ItemCreateDTO struct {
	EvaluationItemName       string           `json:"evaluation_item_name"        validate:"required,min=2,max=160"`
	EvaluationItemKind       model.ItemKind   `json:"evaluation_item_kind"        validate:"required,oneof=DIRECT_SCORE RUBRIC_BASED"`
	EvaluationItemWeightPct  float64          `json:"evaluation_item_weight_pct"  validate:"required,gt=0,lte=100"`
	EvaluationItemRaterClass model.RaterClass `json:"evaluation_item_rater_class" validate:"required,oneof=CAREER_ADMIN TRIBUNAL GENERAL_RATER_POOL"`
	EvaluationItemRubricID   *uuid.UUID       `json:"evaluation_item_rubric_id,omitempty"`
	EvaluationItemActaSlot   *model.ActaSlot  `json:"evaluation_item_acta_slot,omitempty" validate:"omitempty,oneof=TEORICA PRACTICA_ESCRITA PRACTICA_ORAL"`
}

type ItemUpdateDTO struct {
	EvaluationItemName      *string         `json:"evaluation_item_name,omitempty" validate:"omitempty,min=2,max=160"`
	EvaluationItemWeightPct *float64        `json:"evaluation_item_weight_pct,omitempty" validate:"omitempty,gt=0,lte=100"`
	EvaluationItemActaSlot  *model.ActaSlot `json:"evaluation_item_acta_slot,omitempty" validate:"omitempty,oneof=TEORICA PRACTICA_ESCRITA PRACTICA_ORAL"`
	EvaluationItemIsActive  *bool           `json:"evaluation_item_is_active,omitempty"`
}

type ItemResponseDTO struct {
	EvaluationItemID         uuid.UUID        `json:"evaluation_item_id"`
	EvaluationItemPlanID     uuid.UUID        `json:"evaluation_item_plan_id"`
	EvaluationItemName       string           `json:"evaluation_item_name"`
	EvaluationItemKind       model.ItemKind   `json:"evaluation_item_kind"`
	EvaluationItemWeightPct  float64          `json:"evaluation_item_weight_pct"`
	EvaluationItemRaterClass model.RaterClass `json:"evaluation_item_rater_class"`
	EvaluationItemRubricID   *uuid.UUID       `json:"evaluation_item_rubric_id,omitempty"`
	EvaluationItemActaSlot   *model.ActaSlot  `json:"evaluation_item_acta_slot,omitempty"`
	EvaluationItemIsActive   bool             `json:"evaluation_item_is_active"`
}

func (p *ItemCreateDTO) ToModel(planID uuid.UUID) model.EvaluationItemModel {
	return model.EvaluationItemModel{
		EvaluationItemPlanID:     planID,
		EvaluationItemName:       strings.TrimSpace(p.EvaluationItemName),
		EvaluationItemKind:       p.EvaluationItemKind,
		EvaluationItemWeightPct:  p.EvaluationItemWeightPct,
		EvaluationItemRaterClass: p.EvaluationItemRaterClass,
		EvaluationItemRubricID:   p.EvaluationItemRubricID,
		EvaluationItemActaSlot:   p.EvaluationItemActaSlot,
		EvaluationItemIsActive:   true,
	}
}

func (u *ItemUpdateDTO) ApplyUpdates(ent *model.EvaluationItemModel) {
	if u.EvaluationItemName != nil {
		ent.EvaluationItemName = strings.TrimSpace(*u.EvaluationItemName)
	}
	if u.EvaluationItemWeightPct != nil {
		ent.EvaluationItemWeightPct = *u.EvaluationItemWeightPct
	}
	if u.EvaluationItemActaSlot != nil {
		ent.EvaluationItemActaSlot = u.EvaluationItemActaSlot
	}
	if u.EvaluationItemIsActive != nil {
		ent.EvaluationItemIsActive = *u.EvaluationItemIsActive
	}
}

func ItemFromModel(ent model.EvaluationItemModel) ItemResponseDTO {
	return ItemResponseDTO{
		EvaluationItemID:         ent.EvaluationItemID,
		EvaluationItemPlanID:     ent.EvaluationItemPlanID,
		EvaluationItemName:       ent.EvaluationItemName,
		EvaluationItemKind:       ent.EvaluationItemKind,
		EvaluationItemWeightPct:  ent.EvaluationItemWeightPct,
		EvaluationItemRaterClass: ent.EvaluationItemRaterClass,
		EvaluationItemRubricID:   ent.EvaluationItemRubricID,
		EvaluationItemActaSlot:   ent.EvaluationItemActaSlot,
		EvaluationItemIsActive:   ent.EvaluationItemIsActive,
	}
}

func ItemsFromModels(list []model.EvaluationItemModel) []ItemResponseDTO {
	out := make([]ItemResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ItemFromModel(m))
	}
	return out
}

// =======================
// Component-rater binding
// =======================

type ComponentRaterBindDTO struct {
	ItemComponentRaterComponentID uuid.UUID `json:"item_component_rater_component_id" validate:"required"`
	ItemComponentRaterDesignation string    `json:"item_component_rater_designation"  validate:"required,oneof=PRESIDENTE VOCAL_1 VOCAL_2 POOL"`
}

type ComponentRaterResponseDTO struct {
	ItemComponentRaterID          uuid.UUID `json:"item_component_rater_id"`
	ItemComponentRaterItemID      uuid.UUID `json:"item_component_rater_item_id"`
	ItemComponentRaterComponentID uuid.UUID `json:"item_component_rater_component_id"`
	ItemComponentRaterDesignation string    `json:"item_component_rater_designation"`
}

func ComponentRaterFromModel(ent model.ItemComponentRaterModel) ComponentRaterResponseDTO {
	return ComponentRaterResponseDTO{
		ItemComponentRaterID:          ent.ItemComponentRaterID,
		ItemComponentRaterItemID:      ent.ItemComponentRaterItemID,
		ItemComponentRaterComponentID: ent.ItemComponentRaterComponentID,
		ItemComponentRaterDesignation: ent.ItemComponentRaterDesignation,
	}
}

// =======================
// Score & aggregate
// =======================

type ScoreSubmitDTO struct {
	ScoreAssignmentID uuid.UUID  `json:"score_assignment_id" validate:"required"`
	ScoreItemID       uuid.UUID  `json:"score_item_id"       validate:"required"`
	ScoreCriterionID  *uuid.UUID `json:"score_criterion_id,omitempty"`
	ScoreLevelID      *uuid.UUID `json:"score_level_id,omitempty"`
	ScoreValue        *float64   `json:"score_value,omitempty"`
}

type ScoreResponseDTO struct {
	ScoreID           uuid.UUID  `json:"score_id"`
	ScoreAssignmentID uuid.UUID  `json:"score_assignment_id"`
	ScoreItemID       uuid.UUID  `json:"score_item_id"`
	ScoreCriterionID  *uuid.UUID `json:"score_criterion_id,omitempty"`
	ScoreLevelID      *uuid.UUID `json:"score_level_id,omitempty"`
	ScoreValue        float64    `json:"score_value"`
	ScoreRaterContext string     `json:"score_rater_context"`
	ScoreUpdatedAt    time.Time  `json:"score_updated_at"`
}

func ScoreFromModel(ent model.ScoreModel) ScoreResponseDTO {
	out := ScoreResponseDTO{
		ScoreID:           ent.ScoreID,
		ScoreAssignmentID: ent.ScoreAssignmentID,
		ScoreItemID:       ent.ScoreItemID,
		ScoreLevelID:      ent.ScoreLevelID,
		ScoreValue:        ent.ScoreValue,
		ScoreRaterContext: ent.ScoreRaterContext,
		ScoreUpdatedAt:    ent.ScoreUpdatedAt,
	}
	if ent.ScoreCriterionID != uuid.Nil {
		id := ent.ScoreCriterionID
		out.ScoreCriterionID = &id
	}
	return out
}

type AggregateItemDTO struct {
	Name      string          `json:"name"`
	WeightPct float64         `json:"weight_pct"`
	ActaSlot  *model.ActaSlot `json:"acta_slot,omitempty"`
	Subtotal  float64         `json:"subtotal"`
}

type AggregateResponseDTO struct {
	Items     []AggregateItemDTO `json:"items"`
	Final     float64            `json:"final"`
	Threshold float64            `json:"threshold"`
	Approved  bool               `json:"approved"`
}

func AggregateFromService(agg service.Aggregate) AggregateResponseDTO {
	out := AggregateResponseDTO{
		Final:     agg.Final,
		Threshold: agg.Threshold,
		Approved:  agg.Approved,
	}
	for _, it := range agg.Items {
		out.Items = append(out.Items, AggregateItemDTO{
			Name:      it.Name,
			WeightPct: it.WeightPct,
			ActaSlot:  it.ActaSlot,
			Subtotal:  it.Subtotal,
		})
	}
	return out
}
