// file: internals/features/rubrics/model/rubric_component_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   RubricComponentModel — segundo nivel. El peso es interno
   a la rúbrica (porcentaje entre componentes) y es el que
   usa el agregador para combinar medias por componente.
======================================================= */

type RubricComponentModel struct {
	RubricComponentID uuid.UUID `json:"rubric_component_id" gorm:"type:uuid;primaryKey;column:rubric_component_id;default:gen_random_uuid()"`

	RubricComponentRubricID uuid.UUID `json:"rubric_component_rubric_id" gorm:"type:uuid;not null;index;column:rubric_component_rubric_id"`

	RubricComponentName      string  `json:"rubric_component_name" gorm:"type:varchar(160);not null;column:rubric_component_name"`
	RubricComponentWeightPct float64 `json:"rubric_component_weight_pct" gorm:"type:numeric(5,2);not null;column:rubric_component_weight_pct"`

	// Solo presentación, sin efecto en la agregación.
	RubricComponentOrder int `json:"rubric_component_order" gorm:"type:int;not null;default:0;column:rubric_component_order"`

	RubricComponentIsActive bool `json:"rubric_component_is_active" gorm:"type:boolean;not null;default:true;column:rubric_component_is_active"`

	RubricComponentCreatedAt time.Time `json:"rubric_component_created_at" gorm:"column:rubric_component_created_at;not null;autoCreateTime"`
	RubricComponentUpdatedAt time.Time `json:"rubric_component_updated_at" gorm:"column:rubric_component_updated_at;not null;autoUpdateTime"`
}

func (RubricComponentModel) TableName() string {
	return "rubric_components"
}
