// file: internals/features/scheduling/time_slots/service/accessors.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/scheduling/time_slots/model"
)

type TimeSlotRef struct {
	ID             uuid.UUID
	CareerPeriodID uuid.UUID
	Date           time.Time
	RoomLabel      string
	Active         bool
}

// GetTimeSlot: accessor de solo lectura por id.
func GetTimeSlot(db *gorm.DB, id uuid.UUID) (TimeSlotRef, error) {
	var ent model.TimeSlotModel
	if err := db.First(&ent, "time_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeSlotRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "La franja no existe")
		}
		return TimeSlotRef{}, err
	}
	return TimeSlotRef{
		ID:             ent.TimeSlotID,
		CareerPeriodID: ent.TimeSlotCareerPeriodID,
		Date:           ent.TimeSlotDate,
		RoomLabel:      ent.TimeSlotRoomLabel,
		Active:         ent.TimeSlotIsActive,
	}, nil
}
