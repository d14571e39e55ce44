// file: internals/features/tribunals/dto/tribunal_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/tribunals/model"
)

// =======================
// Request DTO
// =======================

type TribunalMemberInputDTO struct {
	TribunalMemberDesignation model.Designation `json:"tribunal_member_designation" validate:"required,oneof=PRESIDENTE VOCAL_1 VOCAL_2"`
	TribunalMemberRaterID     uuid.UUID         `json:"tribunal_member_rater_id"    validate:"required"`
}

type TribunalCreateDTO struct {
	TribunalCareerPeriodID uuid.UUID `json:"tribunal_career_period_id" validate:"required"`
	TribunalName           string    `json:"tribunal_name"             validate:"required,min=3,max=120"`
	TribunalCaseNumber     *string   `json:"tribunal_case_number,omitempty" validate:"omitempty,max=40"`
	TribunalDescription    *string   `json:"tribunal_description,omitempty"`

	TribunalMembers []TribunalMemberInputDTO `json:"tribunal_members" validate:"required,len=3,dive"`
}

type TribunalUpdateDTO struct {
	TribunalName        *string `json:"tribunal_name,omitempty" validate:"omitempty,min=3,max=120"`
	TribunalCaseNumber  *string `json:"tribunal_case_number,omitempty" validate:"omitempty,max=40"`
	TribunalDescription *string `json:"tribunal_description,omitempty"`
	TribunalIsActive    *bool   `json:"tribunal_is_active,omitempty"`

	// Si viene, reemplaza la mesa completa (tres designaciones de nuevo).
	TribunalMembers []TribunalMemberInputDTO `json:"tribunal_members,omitempty" validate:"omitempty,len=3,dive"`
}

type TribunalAssignmentCreateDTO struct {
	TribunalAssignmentStudentID  uuid.UUID `json:"tribunal_assignment_student_id"   validate:"required"`
	TribunalAssignmentTimeSlotID uuid.UUID `json:"tribunal_assignment_time_slot_id" validate:"required"`
}

// =======================
// Response DTO
// =======================

type TribunalMemberResponseDTO struct {
	TribunalMemberID          uuid.UUID         `json:"tribunal_member_id"`
	TribunalMemberDesignation model.Designation `json:"tribunal_member_designation"`
	TribunalMemberRaterID     uuid.UUID         `json:"tribunal_member_rater_id"`
	TribunalMemberIsActive    bool              `json:"tribunal_member_is_active"`
}

type TribunalResponseDTO struct {
	TribunalID             uuid.UUID `json:"tribunal_id"`
	TribunalCareerPeriodID uuid.UUID `json:"tribunal_career_period_id"`
	TribunalName           string    `json:"tribunal_name"`
	TribunalCaseNumber     *string   `json:"tribunal_case_number,omitempty"`
	TribunalDescription    *string   `json:"tribunal_description,omitempty"`
	TribunalIsActive       bool      `json:"tribunal_is_active"`
	TribunalCreatedAt      time.Time `json:"tribunal_created_at"`

	TribunalMembers []TribunalMemberResponseDTO `json:"tribunal_members,omitempty"`
}

type TribunalAssignmentResponseDTO struct {
	TribunalAssignmentID         uuid.UUID `json:"tribunal_assignment_id"`
	TribunalAssignmentTribunalID uuid.UUID `json:"tribunal_assignment_tribunal_id"`
	TribunalAssignmentStudentID  uuid.UUID `json:"tribunal_assignment_student_id"`
	TribunalAssignmentTimeSlotID uuid.UUID `json:"tribunal_assignment_time_slot_id"`
	TribunalAssignmentIsActive   bool      `json:"tribunal_assignment_is_active"`
	TribunalAssignmentCreatedAt  time.Time `json:"tribunal_assignment_created_at"`
}

func (p *TribunalCreateDTO) Normalize() {
	p.TribunalName = strings.TrimSpace(p.TribunalName)
	if p.TribunalCaseNumber != nil {
		t := strings.TrimSpace(*p.TribunalCaseNumber)
		p.TribunalCaseNumber = &t
	}
}

func (p *TribunalCreateDTO) ToModel() model.TribunalModel {
	return model.TribunalModel{
		TribunalCareerPeriodID: p.TribunalCareerPeriodID,
		TribunalName:           p.TribunalName,
		TribunalCaseNumber:     p.TribunalCaseNumber,
		TribunalDescription:    p.TribunalDescription,
		TribunalIsActive:       true,
	}
}

func (u *TribunalUpdateDTO) ApplyUpdates(ent *model.TribunalModel) {
	if u.TribunalName != nil {
		ent.TribunalName = strings.TrimSpace(*u.TribunalName)
	}
	if u.TribunalCaseNumber != nil {
		t := strings.TrimSpace(*u.TribunalCaseNumber)
		ent.TribunalCaseNumber = &t
	}
	if u.TribunalDescription != nil {
		ent.TribunalDescription = u.TribunalDescription
	}
	if u.TribunalIsActive != nil {
		ent.TribunalIsActive = *u.TribunalIsActive
	}
}

func MemberFromModel(m model.TribunalMemberModel) TribunalMemberResponseDTO {
	return TribunalMemberResponseDTO{
		TribunalMemberID:          m.TribunalMemberID,
		TribunalMemberDesignation: m.TribunalMemberDesignation,
		TribunalMemberRaterID:     m.TribunalMemberRaterID,
		TribunalMemberIsActive:    m.TribunalMemberIsActive,
	}
}

func FromModel(ent model.TribunalModel) TribunalResponseDTO {
	out := TribunalResponseDTO{
		TribunalID:             ent.TribunalID,
		TribunalCareerPeriodID: ent.TribunalCareerPeriodID,
		TribunalName:           ent.TribunalName,
		TribunalCaseNumber:     ent.TribunalCaseNumber,
		TribunalDescription:    ent.TribunalDescription,
		TribunalIsActive:       ent.TribunalIsActive,
		TribunalCreatedAt:      ent.TribunalCreatedAt,
	}
	for _, m := range ent.TribunalMembers {
		out.TribunalMembers = append(out.TribunalMembers, MemberFromModel(m))
	}
	return out
}

func FromModels(list []model.TribunalModel) []TribunalResponseDTO {
	out := make([]TribunalResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

func AssignmentFromModel(ent model.TribunalAssignmentModel) TribunalAssignmentResponseDTO {
	return TribunalAssignmentResponseDTO{
		TribunalAssignmentID:         ent.TribunalAssignmentID,
		TribunalAssignmentTribunalID: ent.TribunalAssignmentTribunalID,
		TribunalAssignmentStudentID:  ent.TribunalAssignmentStudentID,
		TribunalAssignmentTimeSlotID: ent.TribunalAssignmentTimeSlotID,
		TribunalAssignmentIsActive:   ent.TribunalAssignmentIsActive,
		TribunalAssignmentCreatedAt:  ent.TribunalAssignmentCreatedAt,
	}
}

func AssignmentsFromModels(list []model.TribunalAssignmentModel) []TribunalAssignmentResponseDTO {
	out := make([]TribunalAssignmentResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, AssignmentFromModel(m))
	}
	return out
}
