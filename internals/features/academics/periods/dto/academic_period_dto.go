// file: internals/features/academics/periods/dto/academic_period_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/academics/periods/model"
)

type AcademicPeriodCreateDTO struct {
	AcademicPeriodName      string    `json:"academic_period_name"       validate:"required,min=4,max=40"`
	AcademicPeriodStartDate time.Time `json:"academic_period_start_date" validate:"required"`
	AcademicPeriodEndDate   time.Time `json:"academic_period_end_date"   validate:"required,gtefield=AcademicPeriodStartDate"`
	AcademicPeriodIsActive  *bool     `json:"academic_period_is_active,omitempty"`
}

type AcademicPeriodUpdateDTO struct {
	AcademicPeriodName      *string    `json:"academic_period_name,omitempty" validate:"omitempty,min=4,max=40"`
	AcademicPeriodStartDate *time.Time `json:"academic_period_start_date,omitempty"`
	AcademicPeriodEndDate   *time.Time `json:"academic_period_end_date,omitempty"`
	AcademicPeriodIsActive  *bool      `json:"academic_period_is_active,omitempty"`
}

type AcademicPeriodResponseDTO struct {
	AcademicPeriodID        uuid.UUID `json:"academic_period_id"`
	AcademicPeriodName      string    `json:"academic_period_name"`
	AcademicPeriodStartDate time.Time `json:"academic_period_start_date"`
	AcademicPeriodEndDate   time.Time `json:"academic_period_end_date"`
	AcademicPeriodIsActive  bool      `json:"academic_period_is_active"`
	AcademicPeriodCreatedAt time.Time `json:"academic_period_created_at"`
}

func (p *AcademicPeriodCreateDTO) Normalize() {
	p.AcademicPeriodName = strings.TrimSpace(p.AcademicPeriodName)
}

func (p *AcademicPeriodCreateDTO) ToModel() model.AcademicPeriodModel {
	isActive := true
	if p.AcademicPeriodIsActive != nil {
		isActive = *p.AcademicPeriodIsActive
	}
	return model.AcademicPeriodModel{
		AcademicPeriodName:      p.AcademicPeriodName,
		AcademicPeriodStartDate: p.AcademicPeriodStartDate,
		AcademicPeriodEndDate:   p.AcademicPeriodEndDate,
		AcademicPeriodIsActive:  isActive,
	}
}

func (u *AcademicPeriodUpdateDTO) ApplyUpdates(ent *model.AcademicPeriodModel) {
	if u.AcademicPeriodName != nil {
		ent.AcademicPeriodName = strings.TrimSpace(*u.AcademicPeriodName)
	}
	if u.AcademicPeriodStartDate != nil {
		ent.AcademicPeriodStartDate = *u.AcademicPeriodStartDate
	}
	if u.AcademicPeriodEndDate != nil {
		ent.AcademicPeriodEndDate = *u.AcademicPeriodEndDate
	}
	if u.AcademicPeriodIsActive != nil {
		ent.AcademicPeriodIsActive = *u.AcademicPeriodIsActive
	}
}

func FromModel(ent model.AcademicPeriodModel) AcademicPeriodResponseDTO {
	return AcademicPeriodResponseDTO{
		AcademicPeriodID:        ent.AcademicPeriodID,
		AcademicPeriodName:      ent.AcademicPeriodName,
		AcademicPeriodStartDate: ent.AcademicPeriodStartDate,
		AcademicPeriodEndDate:   ent.AcademicPeriodEndDate,
		AcademicPeriodIsActive:  ent.AcademicPeriodIsActive,
		AcademicPeriodCreatedAt: ent.AcademicPeriodCreatedAt,
	}
}

func FromModels(list []model.AcademicPeriodModel) []AcademicPeriodResponseDTO {
	out := make([]AcademicPeriodResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
