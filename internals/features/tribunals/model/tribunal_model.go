// file: internals/features/tribunals/model/tribunal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TribunalModel — mesa examinadora de un periodo de carrera.
   Compuesta siempre por tres miembros: presidente y dos
   vocales (ver TribunalMemberModel).
======================================================= */

type TribunalModel struct {
	TribunalID uuid.UUID `json:"tribunal_id" gorm:"type:uuid;primaryKey;column:tribunal_id;default:gen_random_uuid()"`

	TribunalCareerPeriodID uuid.UUID `json:"tribunal_career_period_id" gorm:"type:uuid;not null;index;column:tribunal_career_period_id"`

	TribunalName        string  `json:"tribunal_name" gorm:"type:varchar(120);not null;column:tribunal_name"`
	TribunalCaseNumber  *string `json:"tribunal_case_number,omitempty" gorm:"type:varchar(40);column:tribunal_case_number"`
	TribunalDescription *string `json:"tribunal_description,omitempty" gorm:"type:text;column:tribunal_description"`

	TribunalIsActive bool `json:"tribunal_is_active" gorm:"type:boolean;not null;default:true;column:tribunal_is_active"`

	TribunalCreatedAt time.Time      `json:"tribunal_created_at" gorm:"column:tribunal_created_at;not null;autoCreateTime"`
	TribunalUpdatedAt time.Time      `json:"tribunal_updated_at" gorm:"column:tribunal_updated_at;not null;autoUpdateTime"`
	TribunalDeletedAt gorm.DeletedAt `json:"tribunal_deleted_at" gorm:"column:tribunal_deleted_at;index"`

	// Cargadas bajo demanda
	TribunalMembers []TribunalMemberModel `json:"tribunal_members,omitempty" gorm:"foreignKey:TribunalMemberTribunalID;references:TribunalID"`
}

func (TribunalModel) TableName() string {
	return "tribunals"
}
