// file: internals/features/tribunals/model/tribunal_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TribunalAssignmentModel — un estudiante defendiendo ante
   un tribunal en una franja concreta. Invariantes:
   (tribunal, estudiante) único y (tribunal, franja) único
   entre asignaciones activas.
======================================================= */

type TribunalAssignmentModel struct {
	TribunalAssignmentID uuid.UUID `json:"tribunal_assignment_id" gorm:"type:uuid;primaryKey;column:tribunal_assignment_id;default:gen_random_uuid()"`

	TribunalAssignmentTribunalID uuid.UUID `json:"tribunal_assignment_tribunal_id" gorm:"type:uuid;not null;index;column:tribunal_assignment_tribunal_id"`
	TribunalAssignmentStudentID  uuid.UUID `json:"tribunal_assignment_student_id" gorm:"type:uuid;not null;index;column:tribunal_assignment_student_id"`
	TribunalAssignmentTimeSlotID uuid.UUID `json:"tribunal_assignment_time_slot_id" gorm:"type:uuid;not null;index;column:tribunal_assignment_time_slot_id"`

	TribunalAssignmentIsActive bool `json:"tribunal_assignment_is_active" gorm:"type:boolean;not null;default:true;column:tribunal_assignment_is_active"`

	TribunalAssignmentCreatedAt time.Time      `json:"tribunal_assignment_created_at" gorm:"column:tribunal_assignment_created_at;not null;autoCreateTime"`
	TribunalAssignmentUpdatedAt time.Time      `json:"tribunal_assignment_updated_at" gorm:"column:tribunal_assignment_updated_at;not null;autoUpdateTime"`
	TribunalAssignmentDeletedAt gorm.DeletedAt `json:"tribunal_assignment_deleted_at" gorm:"column:tribunal_assignment_deleted_at;index"`
}

func (TribunalAssignmentModel) TableName() string {
	return "tribunal_assignments"
}
