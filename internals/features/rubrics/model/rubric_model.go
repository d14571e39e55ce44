// file: internals/features/rubrics/model/rubric_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   RubricModel — raíz de la jerarquía de calificación.
   Pertenece a un periodo académico; los planes solo pueden
   enlazar rúbricas de su mismo periodo.
======================================================= */

type RubricModel struct {
	RubricID uuid.UUID `json:"rubric_id" gorm:"type:uuid;primaryKey;column:rubric_id;default:gen_random_uuid()"`

	RubricAcademicPeriodID uuid.UUID `json:"rubric_academic_period_id" gorm:"type:uuid;not null;index;column:rubric_academic_period_id"`
	RubricName             string    `json:"rubric_name" gorm:"type:varchar(160);not null;column:rubric_name"`

	RubricIsActive bool `json:"rubric_is_active" gorm:"type:boolean;not null;default:true;column:rubric_is_active"`

	RubricCreatedAt time.Time      `json:"rubric_created_at" gorm:"column:rubric_created_at;not null;autoCreateTime"`
	RubricUpdatedAt time.Time      `json:"rubric_updated_at" gorm:"column:rubric_updated_at;not null;autoUpdateTime"`
	RubricDeletedAt gorm.DeletedAt `json:"rubric_deleted_at" gorm:"column:rubric_deleted_at;index"`
}

func (RubricModel) TableName() string {
	return "rubrics"
}
