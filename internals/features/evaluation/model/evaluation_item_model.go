// file: internals/features/evaluation/model/evaluation_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enumeraciones del ítem
======================================================= */

type ItemKind string

const (
	ItemKindDirectScore ItemKind = "DIRECT_SCORE"
	ItemKindRubricBased ItemKind = "RUBRIC_BASED"
)

func (k ItemKind) Valid() bool {
	return k == ItemKindDirectScore || k == ItemKindRubricBased
}

type RaterClass string

const (
	RaterClassCareerAdmin RaterClass = "CAREER_ADMIN"
	RaterClassTribunal    RaterClass = "TRIBUNAL"
	RaterClassGeneralPool RaterClass = "GENERAL_RATER_POOL"
)

func (r RaterClass) Valid() bool {
	switch r {
	case RaterClassCareerAdmin, RaterClassTribunal, RaterClassGeneralPool:
		return true
	}
	return false
}

// ActaSlot: a qué subtotal del acta alimenta el ítem (opcional).
type ActaSlot string

const (
	ActaSlotTeorica         ActaSlot = "TEORICA"
	ActaSlotPracticaEscrita ActaSlot = "PRACTICA_ESCRITA"
	ActaSlotPracticaOral    ActaSlot = "PRACTICA_ORAL"
)

func (s ActaSlot) Valid() bool {
	switch s {
	case ActaSlotTeorica, ActaSlotPracticaEscrita, ActaSlotPracticaOral:
		return true
	}
	return false
}

/* =======================================================
   EvaluationItemModel — un sumando de la nota final.
   DIRECT_SCORE nunca lleva rúbrica; RUBRIC_BASED siempre.
======================================================= */

type EvaluationItemModel struct {
	EvaluationItemID uuid.UUID `json:"evaluation_item_id" gorm:"type:uuid;primaryKey;column:evaluation_item_id;default:gen_random_uuid()"`

	EvaluationItemPlanID uuid.UUID `json:"evaluation_item_plan_id" gorm:"type:uuid;not null;index;column:evaluation_item_plan_id"`

	EvaluationItemName      string   `json:"evaluation_item_name" gorm:"type:varchar(160);not null;column:evaluation_item_name"`
	EvaluationItemKind      ItemKind `json:"evaluation_item_kind" gorm:"type:varchar(16);not null;column:evaluation_item_kind"`
	EvaluationItemWeightPct float64  `json:"evaluation_item_weight_pct" gorm:"type:numeric(5,2);not null;column:evaluation_item_weight_pct"`

	EvaluationItemRaterClass RaterClass `json:"evaluation_item_rater_class" gorm:"type:varchar(24);not null;column:evaluation_item_rater_class"`

	EvaluationItemRubricID *uuid.UUID `json:"evaluation_item_rubric_id,omitempty" gorm:"type:uuid;column:evaluation_item_rubric_id"`
	EvaluationItemActaSlot *ActaSlot  `json:"evaluation_item_acta_slot,omitempty" gorm:"type:varchar(20);column:evaluation_item_acta_slot"`

	EvaluationItemIsActive bool `json:"evaluation_item_is_active" gorm:"type:boolean;not null;default:true;column:evaluation_item_is_active"`

	EvaluationItemCreatedAt time.Time `json:"evaluation_item_created_at" gorm:"column:evaluation_item_created_at;not null;autoCreateTime"`
	EvaluationItemUpdatedAt time.Time `json:"evaluation_item_updated_at" gorm:"column:evaluation_item_updated_at;not null;autoUpdateTime"`
}

func (EvaluationItemModel) TableName() string {
	return "evaluation_items"
}
