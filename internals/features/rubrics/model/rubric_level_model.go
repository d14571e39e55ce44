// file: internals/features/rubrics/model/rubric_level_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   RubricLevelModel — escala de logro de la rúbrica. El
   valor numérico (0–20) es lo que el agregador promedia
   cuando un evaluador elige este nivel.
======================================================= */

type RubricLevelModel struct {
	RubricLevelID uuid.UUID `json:"rubric_level_id" gorm:"type:uuid;primaryKey;column:rubric_level_id;default:gen_random_uuid()"`

	RubricLevelRubricID uuid.UUID `json:"rubric_level_rubric_id" gorm:"type:uuid;not null;index;column:rubric_level_rubric_id"`

	RubricLevelLabel string  `json:"rubric_level_label" gorm:"type:varchar(80);not null;column:rubric_level_label"`
	RubricLevelValue float64 `json:"rubric_level_value" gorm:"type:numeric(4,2);not null;column:rubric_level_value"`
	RubricLevelOrder int     `json:"rubric_level_order" gorm:"type:int;not null;default:0;column:rubric_level_order"`

	RubricLevelIsActive bool `json:"rubric_level_is_active" gorm:"type:boolean;not null;default:true;column:rubric_level_is_active"`

	RubricLevelCreatedAt time.Time `json:"rubric_level_created_at" gorm:"column:rubric_level_created_at;not null;autoCreateTime"`
	RubricLevelUpdatedAt time.Time `json:"rubric_level_updated_at" gorm:"column:rubric_level_updated_at;not null;autoUpdateTime"`
}

func (RubricLevelModel) TableName() string {
	return "rubric_levels"
}
