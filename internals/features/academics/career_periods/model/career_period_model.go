// file: internals/features/academics/career_periods/model/career_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CareerPeriodModel — carrera activa dentro de un periodo
   académico. Es la llave de alcance de casi todo el motor:
   franjas horarias, tribunales, planes de evaluación y actas
   cuelgan de este binding.
======================================================= */

type CareerPeriodModel struct {
	// PK
	CareerPeriodID uuid.UUID `json:"career_period_id" gorm:"type:uuid;primaryKey;column:career_period_id;default:gen_random_uuid()"`

	CareerPeriodCareerID uuid.UUID `json:"career_period_career_id" gorm:"type:uuid;not null;column:career_period_career_id;uniqueIndex:uq_career_periods_career_period"`
	CareerPeriodPeriodID uuid.UUID `json:"career_period_period_id" gorm:"type:uuid;not null;column:career_period_period_id;uniqueIndex:uq_career_periods_career_period"`

	// Umbral de aprobación sobre 20 (dominio: 14.00 por defecto)
	CareerPeriodPassThreshold float64 `json:"career_period_pass_threshold" gorm:"type:numeric(4,2);not null;default:14.00;column:career_period_pass_threshold"`

	CareerPeriodIsActive bool `json:"career_period_is_active" gorm:"type:boolean;not null;default:true;column:career_period_is_active"`

	CareerPeriodCreatedAt time.Time      `json:"career_period_created_at" gorm:"column:career_period_created_at;not null;autoCreateTime"`
	CareerPeriodUpdatedAt time.Time      `json:"career_period_updated_at" gorm:"column:career_period_updated_at;not null;autoUpdateTime"`
	CareerPeriodDeletedAt gorm.DeletedAt `json:"career_period_deleted_at" gorm:"column:career_period_deleted_at;index"`
}

func (CareerPeriodModel) TableName() string {
	return "career_periods"
}
