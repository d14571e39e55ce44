// file: internals/features/rubrics/model/rubric_criterion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   RubricCriterionModel — tercer nivel, cuelga de un
   componente.
======================================================= */

type RubricCriterionModel struct {
	RubricCriterionID uuid.UUID `json:"rubric_criterion_id" gorm:"type:uuid;primaryKey;column:rubric_criterion_id;default:gen_random_uuid()"`

	RubricCriterionComponentID uuid.UUID `json:"rubric_criterion_component_id" gorm:"type:uuid;not null;index;column:rubric_criterion_component_id"`

	RubricCriterionName  string `json:"rubric_criterion_name" gorm:"type:varchar(200);not null;column:rubric_criterion_name"`
	RubricCriterionOrder int    `json:"rubric_criterion_order" gorm:"type:int;not null;default:0;column:rubric_criterion_order"`

	RubricCriterionIsActive bool `json:"rubric_criterion_is_active" gorm:"type:boolean;not null;default:true;column:rubric_criterion_is_active"`

	RubricCriterionCreatedAt time.Time `json:"rubric_criterion_created_at" gorm:"column:rubric_criterion_created_at;not null;autoCreateTime"`
	RubricCriterionUpdatedAt time.Time `json:"rubric_criterion_updated_at" gorm:"column:rubric_criterion_updated_at;not null;autoUpdateTime"`
}

func (RubricCriterionModel) TableName() string {
	return "rubric_criteria"
}
