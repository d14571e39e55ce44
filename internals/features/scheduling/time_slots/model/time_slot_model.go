// file: internals/features/scheduling/time_slots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/helpers/dbtime"
)

/* =======================================================
   TimeSlotModel — franja horaria reservable dentro de un
   periodo de carrera. Invariante: para un mismo (periodo
   de carrera, fecha) ningún par de franjas ACTIVAS puede
   solaparse en [start, end).
======================================================= */

type TimeSlotModel struct {
	TimeSlotID uuid.UUID `json:"time_slot_id" gorm:"type:uuid;primaryKey;column:time_slot_id;default:gen_random_uuid()"`

	TimeSlotCareerPeriodID uuid.UUID `json:"time_slot_career_period_id" gorm:"type:uuid;not null;index;column:time_slot_career_period_id"`

	TimeSlotDate      time.Time  `json:"time_slot_date" gorm:"type:date;not null;column:time_slot_date"`
	TimeSlotStartTime dbtime.Tod `json:"time_slot_start_time" gorm:"type:time;not null;column:time_slot_start_time"`
	TimeSlotEndTime   dbtime.Tod `json:"time_slot_end_time"   gorm:"type:time;not null;column:time_slot_end_time"`

	// Aula o laboratorio donde se instala el tribunal
	TimeSlotRoomLabel string `json:"time_slot_room_label" gorm:"type:varchar(80);not null;column:time_slot_room_label"`

	TimeSlotIsActive bool `json:"time_slot_is_active" gorm:"type:boolean;not null;default:true;column:time_slot_is_active"`

	TimeSlotCreatedAt time.Time      `json:"time_slot_created_at" gorm:"column:time_slot_created_at;not null;autoCreateTime"`
	TimeSlotUpdatedAt time.Time      `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;not null;autoUpdateTime"`
	TimeSlotDeletedAt gorm.DeletedAt `json:"time_slot_deleted_at" gorm:"column:time_slot_deleted_at;index"`
}

func (TimeSlotModel) TableName() string {
	return "time_slots"
}
