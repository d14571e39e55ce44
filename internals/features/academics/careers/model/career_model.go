// file: internals/features/academics/careers/model/career_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CareerModel — map a la tabla careers
======================================================= */

type CareerModel struct {
	// PK
	CareerID uuid.UUID `json:"career_id" gorm:"type:uuid;primaryKey;column:career_id;default:gen_random_uuid()"`

	CareerName string `json:"career_name" gorm:"type:varchar(160);not null;column:career_name"`
	CareerCode string `json:"career_code" gorm:"type:varchar(20);not null;uniqueIndex;column:career_code"`

	// Unidad académica a la que pertenece (texto libre, catálogo externo)
	CareerFaculty *string `json:"career_faculty,omitempty" gorm:"type:varchar(160);column:career_faculty"`

	CareerIsActive bool `json:"career_is_active" gorm:"type:boolean;not null;default:true;column:career_is_active"`

	CareerCreatedAt time.Time      `json:"career_created_at" gorm:"column:career_created_at;not null;autoCreateTime"`
	CareerUpdatedAt time.Time      `json:"career_updated_at" gorm:"column:career_updated_at;not null;autoUpdateTime"`
	CareerDeletedAt gorm.DeletedAt `json:"career_deleted_at" gorm:"column:career_deleted_at;index"`
}

func (CareerModel) TableName() string {
	return "careers"
}
