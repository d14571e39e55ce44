// file: internals/features/people/raters/model/rater_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   RaterModel — nombramiento docente dentro de una carrera.
   Los tribunales referencian este nombramiento, no a la
   persona suelta: la misma persona puede tener nombramientos
   en varias carreras.
======================================================= */

type RaterModel struct {
	RaterID uuid.UUID `json:"rater_id" gorm:"type:uuid;primaryKey;column:rater_id;default:gen_random_uuid()"`

	// Identidad (la cuenta vive en el servicio de identidad externo)
	RaterUserID   *uuid.UUID `json:"rater_user_id,omitempty" gorm:"type:uuid;column:rater_user_id"`
	RaterFullName string     `json:"rater_full_name" gorm:"type:varchar(160);not null;column:rater_full_name"`
	RaterDocument string     `json:"rater_document" gorm:"type:varchar(20);not null;column:rater_document"`

	RaterCareerID uuid.UUID `json:"rater_career_id" gorm:"type:uuid;not null;index;column:rater_career_id"`

	RaterIsActive bool `json:"rater_is_active" gorm:"type:boolean;not null;default:true;column:rater_is_active"`

	RaterCreatedAt time.Time      `json:"rater_created_at" gorm:"column:rater_created_at;not null;autoCreateTime"`
	RaterUpdatedAt time.Time      `json:"rater_updated_at" gorm:"column:rater_updated_at;not null;autoUpdateTime"`
	RaterDeletedAt gorm.DeletedAt `json:"rater_deleted_at" gorm:"column:rater_deleted_at;index"`
}

func (RaterModel) TableName() string {
	return "raters"
}
