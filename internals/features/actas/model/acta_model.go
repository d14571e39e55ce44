// file: internals/features/actas/model/acta_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   ActaModel — registro único de certificado por asignación.
   Estados: sin fila = NO_CERTIFICATE; fila = DRAFT. La
   regeneración actualiza la fila in situ, nunca duplica.
======================================================= */

type ActaStatus string

const ActaStatusDraft ActaStatus = "DRAFT"

type ActaModel struct {
	ActaID uuid.UUID `json:"acta_id" gorm:"type:uuid;primaryKey;column:acta_id;default:gen_random_uuid()"`

	// clave natural del contexto de evaluación
	ActaAssignmentID uuid.UUID `json:"acta_assignment_id" gorm:"type:uuid;not null;uniqueIndex:uq_actas_assignment;column:acta_assignment_id"`

	ActaNotaTeorica         *float64 `json:"acta_nota_teorica,omitempty" gorm:"type:numeric(4,2);column:acta_nota_teorica"`
	ActaNotaPracticaEscrita *float64 `json:"acta_nota_practica_escrita,omitempty" gorm:"type:numeric(4,2);column:acta_nota_practica_escrita"`
	ActaNotaPracticaOral    *float64 `json:"acta_nota_practica_oral,omitempty" gorm:"type:numeric(4,2);column:acta_nota_practica_oral"`

	ActaNotaFinal    float64        `json:"acta_nota_final" gorm:"type:numeric(4,2);not null;column:acta_nota_final"`
	ActaCalificacion string         `json:"acta_calificacion" gorm:"type:varchar(20);not null;column:acta_calificacion"`
	ActaAprobado     bool           `json:"acta_aprobado" gorm:"type:boolean;not null;column:acta_aprobado"`
	ActaBreakdown    datatypes.JSON `json:"acta_breakdown" gorm:"type:jsonb;column:acta_breakdown"`

	ActaStatus      ActaStatus `json:"acta_status" gorm:"type:varchar(12);not null;default:'DRAFT';column:acta_status"`
	ActaGeneratedAt time.Time  `json:"acta_generated_at" gorm:"type:date;not null;column:acta_generated_at"`

	ActaIsActive bool `json:"acta_is_active" gorm:"type:boolean;not null;default:true;column:acta_is_active"`

	ActaCreatedAt time.Time      `json:"acta_created_at" gorm:"column:acta_created_at;not null;autoCreateTime"`
	ActaUpdatedAt time.Time      `json:"acta_updated_at" gorm:"column:acta_updated_at;not null;autoUpdateTime"`
	ActaDeletedAt gorm.DeletedAt `json:"acta_deleted_at" gorm:"column:acta_deleted_at;index"`
}

func (ActaModel) TableName() string {
	return "actas"
}
