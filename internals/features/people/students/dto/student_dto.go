// file: internals/features/people/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/people/students/model"
)

type StudentCreateDTO struct {
	StudentUserID         *uuid.UUID `json:"student_user_id,omitempty"`
	StudentFullName       string     `json:"student_full_name" validate:"required,min=5,max=160"`
	StudentDocument       string     `json:"student_document"  validate:"required,min=5,max=20"`
	StudentCareerPeriodID uuid.UUID  `json:"student_career_period_id" validate:"required"`
	StudentIsActive       *bool      `json:"student_is_active,omitempty"`
}

type StudentUpdateDTO struct {
	StudentFullName *string `json:"student_full_name,omitempty" validate:"omitempty,min=5,max=160"`
	StudentIsActive *bool   `json:"student_is_active,omitempty"`
}

type StudentResponseDTO struct {
	StudentID             uuid.UUID  `json:"student_id"`
	StudentUserID         *uuid.UUID `json:"student_user_id,omitempty"`
	StudentFullName       string     `json:"student_full_name"`
	StudentDocument       string     `json:"student_document"`
	StudentCareerPeriodID uuid.UUID  `json:"student_career_period_id"`
	StudentIsActive       bool       `json:"student_is_active"`
	StudentCreatedAt      time.Time  `json:"student_created_at"`
}

func (p *StudentCreateDTO) Normalize() {
	p.StudentFullName = strings.TrimSpace(p.StudentFullName)
	p.StudentDocument = strings.TrimSpace(p.StudentDocument)
}

func (p *StudentCreateDTO) ToModel() model.StudentModel {
	isActive := true
	if p.StudentIsActive != nil {
		isActive = *p.StudentIsActive
	}
	return model.StudentModel{
		StudentUserID:         p.StudentUserID,
		StudentFullName:       p.StudentFullName,
		StudentDocument:       p.StudentDocument,
		StudentCareerPeriodID: p.StudentCareerPeriodID,
		StudentIsActive:       isActive,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentFullName != nil {
		ent.StudentFullName = strings.TrimSpace(*u.StudentFullName)
	}
	if u.StudentIsActive != nil {
		ent.StudentIsActive = *u.StudentIsActive
	}
}

func FromModel(ent model.StudentModel) StudentResponseDTO {
	return StudentResponseDTO{
		StudentID:             ent.StudentID,
		StudentUserID:         ent.StudentUserID,
		StudentFullName:       ent.StudentFullName,
		StudentDocument:       ent.StudentDocument,
		StudentCareerPeriodID: ent.StudentCareerPeriodID,
		StudentIsActive:       ent.StudentIsActive,
		StudentCreatedAt:      ent.StudentCreatedAt,
	}
}

func FromModels(list []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
