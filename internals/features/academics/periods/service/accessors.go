// file: internals/features/academics/periods/service/accessors.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/academics/periods/model"
)

// AcademicPeriodExists: existencia por id, sin cargar la fila completa.
func AcademicPeriodExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var cnt int64
	err := db.Model(&model.AcademicPeriodModel{}).
		Where("academic_period_id = ?", id).
		Count(&cnt).Error
	return cnt > 0, err
}
