// file: internals/features/people/raters/dto/rater_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/people/raters/model"
)

type RaterCreateDTO struct {
	RaterUserID   *uuid.UUID `json:"rater_user_id,omitempty"`
	RaterFullName string     `json:"rater_full_name" validate:"required,min=5,max=160"`
	RaterDocument string     `json:"rater_document"  validate:"required,min=5,max=20"`
	RaterCareerID uuid.UUID  `json:"rater_career_id" validate:"required"`
	RaterIsActive *bool      `json:"rater_is_active,omitempty"`
}

type RaterUpdateDTO struct {
	RaterFullName *string `json:"rater_full_name,omitempty" validate:"omitempty,min=5,max=160"`
	RaterIsActive *bool   `json:"rater_is_active,omitempty"`
}

type RaterResponseDTO struct {
	RaterID        uuid.UUID  `json:"rater_id"`
	RaterUserID    *uuid.UUID `json:"rater_user_id,omitempty"`
	RaterFullName  string     `json:"rater_full_name"`
	RaterDocument  string     `json:"rater_document"`
	RaterCareerID  uuid.UUID  `json:"rater_career_id"`
	RaterIsActive  bool       `json:"rater_is_active"`
	RaterCreatedAt time.Time  `json:"rater_created_at"`
}

func (p *RaterCreateDTO) Normalize() {
	p.RaterFullName = strings.TrimSpace(p.RaterFullName)
	p.RaterDocument = strings.TrimSpace(p.RaterDocument)
}

func (p *RaterCreateDTO) ToModel() model.RaterModel {
	isActive := true
	if p.RaterIsActive != nil {
		isActive = *p.RaterIsActive
	}
	return model.RaterModel{
		RaterUserID:   p.RaterUserID,
		RaterFullName: p.RaterFullName,
		RaterDocument: p.RaterDocument,
		RaterCareerID: p.RaterCareerID,
		RaterIsActive: isActive,
	}
}

func (u *RaterUpdateDTO) ApplyUpdates(ent *model.RaterModel) {
	if u.RaterFullName != nil {
		ent.RaterFullName = strings.TrimSpace(*u.RaterFullName)
	}
	if u.RaterIsActive != nil {
		ent.RaterIsActive = *u.RaterIsActive
	}
}

func FromModel(ent model.RaterModel) RaterResponseDTO {
	return RaterResponseDTO{
		RaterID:        ent.RaterID,
		RaterUserID:    ent.RaterUserID,
		RaterFullName:  ent.RaterFullName,
		RaterDocument:  ent.RaterDocument,
		RaterCareerID:  ent.RaterCareerID,
		RaterIsActive:  ent.RaterIsActive,
		RaterCreatedAt: ent.RaterCreatedAt,
	}
}

func FromModels(list []model.RaterModel) []RaterResponseDTO {
	out := make([]RaterResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
