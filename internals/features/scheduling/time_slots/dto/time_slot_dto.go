// file: internals/features/scheduling/time_slots/dto/time_slot_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/scheduling/time_slots/model"
	"titulacion_backend/internals/helpers/dbtime"
)

// =======================
// Request DTO
// =======================

type TimeSlotCreateDTO struct {
	TimeSlotCareerPeriodID uuid.UUID  `json:"time_slot_career_period_id" validate:"required"`
	TimeSlotDate           time.Time  `json:"time_slot_date"       validate:"required"`
	TimeSlotStartTime      dbtime.Tod `json:"time_slot_start_time" validate:"required"`
	TimeSlotEndTime        dbtime.Tod `json:"time_slot_end_time"   validate:"required"`
	TimeSlotRoomLabel      string     `json:"time_slot_room_label" validate:"required,min=1,max=80"`
}

type TimeSlotUpdateDTO struct {
	TimeSlotDate      *time.Time  `json:"time_slot_date,omitempty"`
	TimeSlotStartTime *dbtime.Tod `json:"time_slot_start_time,omitempty"`
	TimeSlotEndTime   *dbtime.Tod `json:"time_slot_end_time,omitempty"`
	TimeSlotRoomLabel *string     `json:"time_slot_room_label,omitempty" validate:"omitempty,min=1,max=80"`
	TimeSlotIsActive  *bool       `json:"time_slot_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type TimeSlotResponseDTO struct {
	TimeSlotID             uuid.UUID  `json:"time_slot_id"`
	TimeSlotCareerPeriodID uuid.UUID  `json:"time_slot_career_period_id"`
	TimeSlotDate           time.Time  `json:"time_slot_date"`
	TimeSlotStartTime      dbtime.Tod `json:"time_slot_start_time"`
	TimeSlotEndTime        dbtime.Tod `json:"time_slot_end_time"`
	TimeSlotRoomLabel      string     `json:"time_slot_room_label"`
	TimeSlotIsActive       bool       `json:"time_slot_is_active"`
	TimeSlotCreatedAt      time.Time  `json:"time_slot_created_at"`
}

func (p *TimeSlotCreateDTO) Normalize() {
	p.TimeSlotRoomLabel = strings.TrimSpace(p.TimeSlotRoomLabel)
}

func (p *TimeSlotCreateDTO) ToModel() model.TimeSlotModel {
	return model.TimeSlotModel{
		TimeSlotCareerPeriodID: p.TimeSlotCareerPeriodID,
		TimeSlotDate:           p.TimeSlotDate,
		TimeSlotStartTime:      p.TimeSlotStartTime,
		TimeSlotEndTime:        p.TimeSlotEndTime,
		TimeSlotRoomLabel:      p.TimeSlotRoomLabel,
		TimeSlotIsActive:       true,
	}
}

func (u *TimeSlotUpdateDTO) ApplyUpdates(ent *model.TimeSlotModel) {
	if u.TimeSlotDate != nil {
		ent.TimeSlotDate = *u.TimeSlotDate
	}
	if u.TimeSlotStartTime != nil {
		ent.TimeSlotStartTime = *u.TimeSlotStartTime
	}
	if u.TimeSlotEndTime != nil {
		ent.TimeSlotEndTime = *u.TimeSlotEndTime
	}
	if u.TimeSlotRoomLabel != nil {
		ent.TimeSlotRoomLabel = strings.TrimSpace(*u.TimeSlotRoomLabel)
	}
	if u.TimeSlotIsActive != nil {
		ent.TimeSlotIsActive = *u.TimeSlotIsActive
	}
}

func FromModel(ent model.TimeSlotModel) TimeSlotResponseDTO {
	return TimeSlotResponseDTO{
		TimeSlotID:             ent.TimeSlotID,
		TimeSlotCareerPeriodID: ent.TimeSlotCareerPeriodID,
		TimeSlotDate:           ent.TimeSlotDate,
		TimeSlotStartTime:      ent.TimeSlotStartTime,
		TimeSlotEndTime:        ent.TimeSlotEndTime,
		TimeSlotRoomLabel:      ent.TimeSlotRoomLabel,
		TimeSlotIsActive:       ent.TimeSlotIsActive,
		TimeSlotCreatedAt:      ent.TimeSlotCreatedAt,
	}
}

func FromModels(list []model.TimeSlotModel) []TimeSlotResponseDTO {
	out := make([]TimeSlotResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
