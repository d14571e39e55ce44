// file: internals/features/tribunals/model/tribunal_member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Designación dentro del tribunal
======================================================= */

type Designation string

const (
	DesignationPresidente Designation = "PRESIDENTE"
	DesignationVocal1     Designation = "VOCAL_1"
	DesignationVocal2     Designation = "VOCAL_2"
)

// AllDesignations en orden de protocolo.
var AllDesignations = []Designation{DesignationPresidente, DesignationVocal1, DesignationVocal2}

func (d Designation) Valid() bool {
	switch d {
	case DesignationPresidente, DesignationVocal1, DesignationVocal2:
		return true
	}
	return false
}

/* =======================================================
   TribunalMemberModel — vincula un nombramiento docente
   (no la persona suelta) a un tribunal con una designación.
======================================================= */

type TribunalMemberModel struct {
	TribunalMemberID uuid.UUID `json:"tribunal_member_id" gorm:"type:uuid;primaryKey;column:tribunal_member_id;default:gen_random_uuid()"`

	TribunalMemberTribunalID  uuid.UUID   `json:"tribunal_member_tribunal_id" gorm:"type:uuid;not null;index;column:tribunal_member_tribunal_id;uniqueIndex:uq_tribunal_members_designation"`
	TribunalMemberRaterID     uuid.UUID   `json:"tribunal_member_rater_id" gorm:"type:uuid;not null;index;column:tribunal_member_rater_id"`
	// único solo entre filas activas: el reemplazo de mesa desactiva las
	// anteriores y las conserva como histórico
	TribunalMemberDesignation Designation `json:"tribunal_member_designation" gorm:"type:varchar(12);not null;column:tribunal_member_designation;uniqueIndex:uq_tribunal_members_designation,where:tribunal_member_is_active = TRUE"`

	TribunalMemberIsActive bool `json:"tribunal_member_is_active" gorm:"type:boolean;not null;default:true;column:tribunal_member_is_active"`

	TribunalMemberCreatedAt time.Time `json:"tribunal_member_created_at" gorm:"column:tribunal_member_created_at;not null;autoCreateTime"`
	TribunalMemberUpdatedAt time.Time `json:"tribunal_member_updated_at" gorm:"column:tribunal_member_updated_at;not null;autoUpdateTime"`
}

func (TribunalMemberModel) TableName() string {
	return "tribunal_members"
}
