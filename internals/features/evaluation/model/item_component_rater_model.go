// file: internals/features/evaluation/model/item_component_rater_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ItemComponentRaterModel — reparte los componentes de la
   rúbrica de un ítem RUBRIC_BASED entre co-evaluadores
   (designación del tribunal o el pool general). Upsert por
   (ítem, componente): revincular sobreescribe.
======================================================= */

type ItemComponentRaterModel struct {
	ItemComponentRaterID uuid.UUID `json:"item_component_rater_id" gorm:"type:uuid;primaryKey;column:item_component_rater_id;default:gen_random_uuid()"`

	ItemComponentRaterItemID      uuid.UUID `json:"item_component_rater_item_id" gorm:"type:uuid;not null;column:item_component_rater_item_id;uniqueIndex:uq_item_component_raters_pair"`
	ItemComponentRaterComponentID uuid.UUID `json:"item_component_rater_component_id" gorm:"type:uuid;not null;column:item_component_rater_component_id;uniqueIndex:uq_item_component_raters_pair"`

	// PRESIDENTE | VOCAL_1 | VOCAL_2 | POOL
	ItemComponentRaterDesignation string `json:"item_component_rater_designation" gorm:"type:varchar(12);not null;column:item_component_rater_designation"`

	ItemComponentRaterCreatedAt time.Time `json:"item_component_rater_created_at" gorm:"column:item_component_rater_created_at;not null;autoCreateTime"`
	ItemComponentRaterUpdatedAt time.Time `json:"item_component_rater_updated_at" gorm:"column:item_component_rater_updated_at;not null;autoUpdateTime"`
}

func (ItemComponentRaterModel) TableName() string {
	return "evaluation_item_component_raters"
}
