// file: internals/features/evaluation/model/score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ScoreModel — una entrada de calificación. Upsert por
   clave natural (asignación, ítem, criterio, contexto del
   evaluador): reenviar sobreescribe, nunca acumula. Para
   ítems DIRECT_SCORE el criterio es el uuid cero.

   score_value guarda el valor numérico ya resuelto (nota
   directa o valor del nivel elegido) redondeado a dos
   decimales, de modo que el agregador no tiene que volver
   a resolver niveles.
======================================================= */

type ScoreModel struct {
	ScoreID uuid.UUID `json:"score_id" gorm:"type:uuid;primaryKey;column:score_id;default:gen_random_uuid()"`

	ScoreAssignmentID uuid.UUID `json:"score_assignment_id" gorm:"type:uuid;not null;column:score_assignment_id;uniqueIndex:uq_scores_natural_key"`
	ScoreItemID       uuid.UUID `json:"score_item_id" gorm:"type:uuid;not null;column:score_item_id;uniqueIndex:uq_scores_natural_key"`
	ScoreCriterionID  uuid.UUID `json:"score_criterion_id" gorm:"type:uuid;not null;default:'00000000-0000-0000-0000-000000000000';column:score_criterion_id;uniqueIndex:uq_scores_natural_key"`

	// ADMIN | PRESIDENTE | VOCAL_1 | VOCAL_2 | POOL:<rater_id>
	ScoreRaterContext string `json:"score_rater_context" gorm:"type:varchar(50);not null;column:score_rater_context;uniqueIndex:uq_scores_natural_key"`

	ScoreLevelID *uuid.UUID `json:"score_level_id,omitempty" gorm:"type:uuid;column:score_level_id"`
	ScoreValue   float64    `json:"score_value" gorm:"type:numeric(4,2);not null;column:score_value"`

	ScoreSubmittedBy uuid.UUID `json:"score_submitted_by" gorm:"type:uuid;not null;column:score_submitted_by"`

	ScoreCreatedAt time.Time `json:"score_created_at" gorm:"column:score_created_at;not null;autoCreateTime"`
	ScoreUpdatedAt time.Time `json:"score_updated_at" gorm:"column:score_updated_at;not null;autoUpdateTime"`
}

func (ScoreModel) TableName() string {
	return "scores"
}
