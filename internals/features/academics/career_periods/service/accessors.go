// file: internals/features/academics/career_periods/service/accessors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/career_periods/model"
)

/* =========================================================
   Accessors de solo lectura que consume el motor de
   evaluación/agenda. Todo lo que valida "¿a qué carrera /
   periodo pertenece X?" pasa por aquí.
========================================================= */

// CareerPeriodRef: proyección mínima del binding.
type CareerPeriodRef struct {
	ID            uuid.UUID
	CareerID      uuid.UUID
	PeriodID      uuid.UUID
	PassThreshold float64
	Active        bool
}

// GetCareerPeriod: carga el binding o 422 si no existe.
func GetCareerPeriod(db *gorm.DB, id uuid.UUID) (CareerPeriodRef, error) {
	var ent model.CareerPeriodModel
	if err := db.First(&ent, "career_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CareerPeriodRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El periodo de carrera no existe")
		}
		return CareerPeriodRef{}, err
	}
	return CareerPeriodRef{
		ID:            ent.CareerPeriodID,
		CareerID:      ent.CareerPeriodCareerID,
		PeriodID:      ent.CareerPeriodPeriodID,
		PassThreshold: ent.CareerPeriodPassThreshold,
		Active:        ent.CareerPeriodIsActive,
	}, nil
}

func CareerPeriodExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var cnt int64
	err := db.Model(&model.CareerPeriodModel{}).
		Where("career_period_id = ?", id).
		Count(&cnt).Error
	return cnt > 0, err
}

// CareerOf: carrera dueña del binding.
func CareerOf(db *gorm.DB, careerPeriodID uuid.UUID) (uuid.UUID, error) {
	ref, err := GetCareerPeriod(db, careerPeriodID)
	if err != nil {
		return uuid.Nil, err
	}
	return ref.CareerID, nil
}

// AcademicPeriodOf: periodo académico del binding.
func AcademicPeriodOf(db *gorm.DB, careerPeriodID uuid.UUID) (uuid.UUID, error) {
	ref, err := GetCareerPeriod(db, careerPeriodID)
	if err != nil {
		return uuid.Nil, err
	}
	return ref.PeriodID, nil
}
