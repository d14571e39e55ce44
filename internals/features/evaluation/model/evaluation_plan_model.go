// file: internals/features/evaluation/model/evaluation_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   EvaluationPlanModel — composición ponderada de la nota
   final de un periodo de carrera. Solo puede haber un plan
   activo por periodo de carrera.
======================================================= */

type EvaluationPlanModel struct {
	EvaluationPlanID uuid.UUID `json:"evaluation_plan_id" gorm:"type:uuid;primaryKey;column:evaluation_plan_id;default:gen_random_uuid()"`

	EvaluationPlanCareerPeriodID uuid.UUID `json:"evaluation_plan_career_period_id" gorm:"type:uuid;not null;index;column:evaluation_plan_career_period_id"`
	EvaluationPlanName           string    `json:"evaluation_plan_name" gorm:"type:varchar(160);not null;column:evaluation_plan_name"`

	EvaluationPlanIsActive bool `json:"evaluation_plan_is_active" gorm:"type:boolean;not null;default:true;column:evaluation_plan_is_active"`

	EvaluationPlanCreatedAt time.Time      `json:"evaluation_plan_created_at" gorm:"column:evaluation_plan_created_at;not null;autoCreateTime"`
	EvaluationPlanUpdatedAt time.Time      `json:"evaluation_plan_updated_at" gorm:"column:evaluation_plan_updated_at;not null;autoUpdateTime"`
	EvaluationPlanDeletedAt gorm.DeletedAt `json:"evaluation_plan_deleted_at" gorm:"column:evaluation_plan_deleted_at;index"`

	EvaluationItems []EvaluationItemModel `json:"evaluation_items,omitempty" gorm:"foreignKey:EvaluationItemPlanID;references:EvaluationPlanID"`
}

func (EvaluationPlanModel) TableName() string {
	return "evaluation_plans"
}
