// file: internals/features/academics/periods/model/academic_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicPeriodModel struct {
	AcademicPeriodID uuid.UUID `json:"academic_period_id" gorm:"type:uuid;primaryKey;column:academic_period_id;default:gen_random_uuid()"`

	// Ej. "2025-1S"
	AcademicPeriodName      string    `json:"academic_period_name" gorm:"type:varchar(40);not null;uniqueIndex;column:academic_period_name"`
	AcademicPeriodStartDate time.Time `json:"academic_period_start_date" gorm:"type:date;not null;column:academic_period_start_date"`
	AcademicPeriodEndDate   time.Time `json:"academic_period_end_date" gorm:"type:date;not null;column:academic_period_end_date"`

	AcademicPeriodIsActive bool `json:"academic_period_is_active" gorm:"type:boolean;not null;default:true;column:academic_period_is_active"`

	AcademicPeriodCreatedAt time.Time      `json:"academic_period_created_at" gorm:"column:academic_period_created_at;not null;autoCreateTime"`
	AcademicPeriodUpdatedAt time.Time      `json:"academic_period_updated_at" gorm:"column:academic_period_updated_at;not null;autoUpdateTime"`
	AcademicPeriodDeletedAt gorm.DeletedAt `json:"academic_period_deleted_at" gorm:"column:academic_period_deleted_at;index"`
}

func (AcademicPeriodModel) TableName() string {
	return "academic_periods"
}
