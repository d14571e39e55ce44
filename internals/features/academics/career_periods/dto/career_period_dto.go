// file: internals/features/academics/career_periods/dto/career_period_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/academics/career_periods/model"
)

type CareerPeriodCreateDTO struct {
	CareerPeriodCareerID      uuid.UUID `json:"career_period_career_id" validate:"required"`
	CareerPeriodPeriodID      uuid.UUID `json:"career_period_period_id" validate:"required"`
	CareerPeriodPassThreshold *float64  `json:"career_period_pass_threshold,omitempty" validate:"omitempty,gte=0,lte=20"`
	CareerPeriodIsActive      *bool     `json:"career_period_is_active,omitempty"`
}

type CareerPeriodUpdateDTO struct {
	CareerPeriodPassThreshold *float64 `json:"career_period_pass_threshold,omitempty" validate:"omitempty,gte=0,lte=20"`
	CareerPeriodIsActive      *bool    `json:"career_period_is_active,omitempty"`
}

type CareerPeriodResponseDTO struct {
	CareerPeriodID            uuid.UUID `json:"career_period_id"`
	CareerPeriodCareerID      uuid.UUID `json:"career_period_career_id"`
	CareerPeriodPeriodID      uuid.UUID `json:"career_period_period_id"`
	CareerPeriodPassThreshold float64   `json:"career_period_pass_threshold"`
	CareerPeriodIsActive      bool      `json:"career_period_is_active"`
	CareerPeriodCreatedAt     time.Time `json:"career_period_created_at"`
}

func (p *CareerPeriodCreateDTO) ToModel() model.CareerPeriodModel {
	threshold := 14.00
	if p.CareerPeriodPassThreshold != nil {
		threshold = *p.CareerPeriodPassThreshold
	}
	isActive := true
	if p.CareerPeriodIsActive != nil {
		isActive = *p.CareerPeriodIsActive
	}
	return model.CareerPeriodModel{
		CareerPeriodCareerID:      p.CareerPeriodCareerID,
		CareerPeriodPeriodID:      p.CareerPeriodPeriodID,
		CareerPeriodPassThreshold: threshold,
		CareerPeriodIsActive:      isActive,
	}
}

func (u *CareerPeriodUpdateDTO) ApplyUpdates(ent *model.CareerPeriodModel) {
	if u.CareerPeriodPassThreshold != nil {
		ent.CareerPeriodPassThreshold = *u.CareerPeriodPassThreshold
	}
	if u.CareerPeriodIsActive != nil {
		ent.CareerPeriodIsActive = *u.CareerPeriodIsActive
	}
}

func FromModel(ent model.CareerPeriodModel) CareerPeriodResponseDTO {
	return CareerPeriodResponseDTO{
		CareerPeriodID:            ent.CareerPeriodID,
		CareerPeriodCareerID:      ent.CareerPeriodCareerID,
		CareerPeriodPeriodID:      ent.CareerPeriodPeriodID,
		CareerPeriodPassThreshold: ent.CareerPeriodPassThreshold,
		CareerPeriodIsActive:      ent.CareerPeriodIsActive,
		CareerPeriodCreatedAt:     ent.CareerPeriodCreatedAt,
	}
}

func FromModels(list []model.CareerPeriodModel) []CareerPeriodResponseDTO {
	out := make([]CareerPeriodResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
