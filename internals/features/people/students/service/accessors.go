// file: internals/features/people/students/service/accessors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/people/students/model"
)

type StudentRef struct {
	ID             uuid.UUID
	CareerPeriodID uuid.UUID
	FullName       string
	Active         bool
}

// GetStudent: accessor de solo lectura por id.
func GetStudent(db *gorm.DB, id uuid.UUID) (StudentRef, error) {
	var ent model.StudentModel
	if err := db.First(&ent, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StudentRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El estudiante no existe")
		}
		return StudentRef{}, err
	}
	return StudentRef{
		ID:             ent.StudentID,
		CareerPeriodID: ent.StudentCareerPeriodID,
		FullName:       ent.StudentFullName,
		Active:         ent.StudentIsActive,
	}, nil
}

// StudentCareerPeriod: periodo de carrera (cohorte) del estudiante.
func StudentCareerPeriod(db *gorm.DB, studentID uuid.UUID) (uuid.UUID, error) {
	ref, err := GetStudent(db, studentID)
	if err != nil {
		return uuid.Nil, err
	}
	return ref.CareerPeriodID, nil
}
