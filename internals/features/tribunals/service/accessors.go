// file: internals/features/tribunals/service/accessors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/tribunals/model"
)

/* =========================================================
   Accesos de solo lectura usados por otros features
   (evaluación, actas) para resolver tribunales y asignaciones.
========================================================= */

type TribunalRef struct {
	ID             uuid.UUID
	CareerPeriodID uuid.UUID
	Active         bool
}

type AssignmentRef struct {
	ID         uuid.UUID
	TribunalID uuid.UUID
	StudentID  uuid.UUID
	TimeSlotID uuid.UUID
	Active     bool
}

func GetTribunal(tx *gorm.DB, id uuid.UUID) (TribunalRef, error) {
	var m model.TribunalModel
	if err := tx.First(&m, "tribunal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TribunalRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El tribunal no existe")
		}
		return TribunalRef{}, err
	}
	return TribunalRef{
		ID:             m.TribunalID,
		CareerPeriodID: m.TribunalCareerPeriodID,
		Active:         m.TribunalIsActive,
	}, nil
}

func GetAssignment(tx *gorm.DB, id uuid.UUID) (AssignmentRef, error) {
	var m model.TribunalAssignmentModel
	if err := tx.First(&m, "tribunal_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "La asignación no existe")
		}
		return AssignmentRef{}, err
	}
	return AssignmentRef{
		ID:         m.TribunalAssignmentID,
		TribunalID: m.TribunalAssignmentTribunalID,
		StudentID:  m.TribunalAssignmentStudentID,
		TimeSlotID: m.TribunalAssignmentTimeSlotID,
		Active:     m.TribunalAssignmentIsActive,
	}, nil
}

// ListMembers devuelve la mesa vigente (solo filas activas) ordenada por
// designación. Los reemplazos anteriores quedan fuera.
func ListMembers(tx *gorm.DB, tribunalID uuid.UUID) ([]model.TribunalMemberModel, error) {
	var rows []model.TribunalMemberModel
	err := tx.
		Where("tribunal_member_tribunal_id = ? AND tribunal_member_is_active = TRUE", tribunalID).
		Order("tribunal_member_designation ASC").
		Find(&rows).Error
	return rows, err
}
