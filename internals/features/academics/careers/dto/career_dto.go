// file: internals/features/academics/careers/dto/career_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/academics/careers/model"
)

// =======================
// Request DTO
// =======================

type CareerCreateDTO struct {
	CareerName    string  `json:"career_name"    validate:"required,min=3,max=160"`
	CareerCode    string  `json:"career_code"    validate:"required,min=2,max=20"`
	CareerFaculty *string `json:"career_faculty,omitempty" validate:"omitempty,max=160"`
	// pointer: distingue "no enviado" de "false"
	CareerIsActive *bool `json:"career_is_active,omitempty"`
}

type CareerUpdateDTO struct {
	CareerName     *string `json:"career_name,omitempty"    validate:"omitempty,min=3,max=160"`
	CareerCode     *string `json:"career_code,omitempty"    validate:"omitempty,min=2,max=20"`
	CareerFaculty  *string `json:"career_faculty,omitempty" validate:"omitempty,max=160"`
	CareerIsActive *bool   `json:"career_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type CareerResponseDTO struct {
	CareerID       uuid.UUID `json:"career_id"`
	CareerName     string    `json:"career_name"`
	CareerCode     string    `json:"career_code"`
	CareerFaculty  *string   `json:"career_faculty,omitempty"`
	CareerIsActive bool      `json:"career_is_active"`
	CareerCreatedAt time.Time `json:"career_created_at"`
	CareerUpdatedAt time.Time `json:"career_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *CareerCreateDTO) Normalize() {
	p.CareerName = strings.TrimSpace(p.CareerName)
	p.CareerCode = strings.ToUpper(strings.TrimSpace(p.CareerCode))
}

func (p *CareerCreateDTO) ToModel() model.CareerModel {
	isActive := true
	if p.CareerIsActive != nil {
		isActive = *p.CareerIsActive
	}
	return model.CareerModel{
		CareerName:     p.CareerName,
		CareerCode:     p.CareerCode,
		CareerFaculty:  p.CareerFaculty,
		CareerIsActive: isActive,
	}
}

func (u *CareerUpdateDTO) ApplyUpdates(ent *model.CareerModel) {
	if u.CareerName != nil {
		ent.CareerName = strings.TrimSpace(*u.CareerName)
	}
	if u.CareerCode != nil {
		ent.CareerCode = strings.ToUpper(strings.TrimSpace(*u.CareerCode))
	}
	if u.CareerFaculty != nil {
		ent.CareerFaculty = u.CareerFaculty
	}
	if u.CareerIsActive != nil {
		ent.CareerIsActive = *u.CareerIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.CareerModel) CareerResponseDTO {
	return CareerResponseDTO{
		CareerID:        ent.CareerID,
		CareerName:      ent.CareerName,
		CareerCode:      ent.CareerCode,
		CareerFaculty:   ent.CareerFaculty,
		CareerIsActive:  ent.CareerIsActive,
		CareerCreatedAt: ent.CareerCreatedAt,
		CareerUpdatedAt: ent.CareerUpdatedAt,
	}
}

func FromModels(list []model.CareerModel) []CareerResponseDTO {
	out := make([]CareerResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
