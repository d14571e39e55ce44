// file: internals/features/rubrics/model/rubric_cell_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   RubricCellModel — texto descriptivo de una combinación
   (componente, criterio, nivel). Sin celda con texto no se
   puede elegir ese nivel al calificar.
======================================================= */

type RubricCellModel struct {
	RubricCellID uuid.UUID `json:"rubric_cell_id" gorm:"type:uuid;primaryKey;column:rubric_cell_id;default:gen_random_uuid()"`

	RubricCellComponentID uuid.UUID `json:"rubric_cell_component_id" gorm:"type:uuid;not null;column:rubric_cell_component_id;uniqueIndex:uq_rubric_cells_triple"`
	RubricCellCriterionID uuid.UUID `json:"rubric_cell_criterion_id" gorm:"type:uuid;not null;column:rubric_cell_criterion_id;uniqueIndex:uq_rubric_cells_triple"`
	RubricCellLevelID     uuid.UUID `json:"rubric_cell_level_id" gorm:"type:uuid;not null;column:rubric_cell_level_id;uniqueIndex:uq_rubric_cells_triple"`

	RubricCellText string `json:"rubric_cell_text" gorm:"type:text;not null;column:rubric_cell_text"`

	RubricCellCreatedAt time.Time `json:"rubric_cell_created_at" gorm:"column:rubric_cell_created_at;not null;autoCreateTime"`
	RubricCellUpdatedAt time.Time `json:"rubric_cell_updated_at" gorm:"column:rubric_cell_updated_at;not null;autoUpdateTime"`
}

func (RubricCellModel) TableName() string {
	return "rubric_cells"
}
