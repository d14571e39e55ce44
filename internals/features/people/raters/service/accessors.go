// file: internals/features/people/raters/service/accessors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/people/raters/model"
)

// RaterRef: lo que el motor necesita saber de un nombramiento.
type RaterRef struct {
	ID       uuid.UUID
	CareerID uuid.UUID
	FullName string
	Active   bool
}

// RaterAppointment: accessor de solo lectura por id.
func RaterAppointment(db *gorm.DB, id uuid.UUID) (RaterRef, error) {
	var ent model.RaterModel
	if err := db.First(&ent, "rater_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RaterRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El nombramiento docente no existe")
		}
		return RaterRef{}, err
	}
	return RaterRef{
		ID:       ent.RaterID,
		CareerID: ent.RaterCareerID,
		FullName: ent.RaterFullName,
		Active:   ent.RaterIsActive,
	}, nil
}
