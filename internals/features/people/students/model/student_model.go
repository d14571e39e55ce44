// file: internals/features/people/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	StudentUserID   *uuid.UUID `json:"student_user_id,omitempty" gorm:"type:uuid;column:student_user_id"`
	StudentFullName string     `json:"student_full_name" gorm:"type:varchar(160);not null;column:student_full_name"`
	StudentDocument string     `json:"student_document" gorm:"type:varchar(20);not null;uniqueIndex;column:student_document"`

	// Cohorte: carrera dentro del periodo donde rinde su defensa
	StudentCareerPeriodID uuid.UUID `json:"student_career_period_id" gorm:"type:uuid;not null;index;column:student_career_period_id"`

	StudentIsActive bool `json:"student_is_active" gorm:"type:boolean;not null;default:true;column:student_is_active"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
