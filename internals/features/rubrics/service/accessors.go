// file: internals/features/rubrics/service/accessors.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"titulacion_backend/internals/features/rubrics/model"
)

/* =========================================================
   Accessors de solo lectura de la jerarquía. El plan de
   evaluación y el agregador resuelven todo por aquí.
========================================================= */

type RubricRef struct {
	ID               uuid.UUID
	AcademicPeriodID uuid.UUID
	Name             string
	Active           bool
}

type ComponentRef struct {
	ID        uuid.UUID
	RubricID  uuid.UUID
	Name      string
	WeightPct float64
	Active    bool
}

type CriterionRef struct {
	ID          uuid.UUID
	ComponentID uuid.UUID
	Name        string
	Active      bool
}

type LevelRef struct {
	ID       uuid.UUID
	RubricID uuid.UUID
	Label    string
	Value    float64
	Active   bool
}

func GetRubric(db *gorm.DB, id uuid.UUID) (RubricRef, error) {
	var ent model.RubricModel
	if err := db.First(&ent, "rubric_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RubricRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "La rúbrica no existe")
		}
		return RubricRef{}, err
	}
	return RubricRef{
		ID:               ent.RubricID,
		AcademicPeriodID: ent.RubricAcademicPeriodID,
		Name:             ent.RubricName,
		Active:           ent.RubricIsActive,
	}, nil
}

// RubricPeriodOf: periodo académico de la rúbrica.
func RubricPeriodOf(db *gorm.DB, rubricID uuid.UUID) (uuid.UUID, error) {
	ref, err := GetRubric(db, rubricID)
	if err != nil {
		return uuid.Nil, err
	}
	return ref.AcademicPeriodID, nil
}

func GetComponent(db *gorm.DB, id uuid.UUID) (ComponentRef, error) {
	var ent model.RubricComponentModel
	if err := db.First(&ent, "rubric_component_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El componente no existe")
		}
		return ComponentRef{}, err
	}
	return ComponentRef{
		ID:        ent.RubricComponentID,
		RubricID:  ent.RubricComponentRubricID,
		Name:      ent.RubricComponentName,
		WeightPct: ent.RubricComponentWeightPct,
		Active:    ent.RubricComponentIsActive,
	}, nil
}

func GetCriterion(db *gorm.DB, id uuid.UUID) (CriterionRef, error) {
	var ent model.RubricCriterionModel
	if err := db.First(&ent, "rubric_criterion_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CriterionRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El criterio no existe")
		}
		return CriterionRef{}, err
	}
	return CriterionRef{
		ID:          ent.RubricCriterionID,
		ComponentID: ent.RubricCriterionComponentID,
		Name:        ent.RubricCriterionName,
		Active:      ent.RubricCriterionIsActive,
	}, nil
}

func GetLevel(db *gorm.DB, id uuid.UUID) (LevelRef, error) {
	var ent model.RubricLevelModel
	if err := db.First(&ent, "rubric_level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LevelRef{}, fiber.NewError(fiber.StatusUnprocessableEntity, "El nivel no existe")
		}
		return LevelRef{}, err
	}
	return LevelRef{
		ID:       ent.RubricLevelID,
		RubricID: ent.RubricLevelRubricID,
		Label:    ent.RubricLevelLabel,
		Value:    ent.RubricLevelValue,
		Active:   ent.RubricLevelIsActive,
	}, nil
}

// CellExists: hay celda con texto para la tripleta. Vacía cuenta como ausente.
func CellExists(db *gorm.DB, componentID, criterionID, levelID uuid.UUID) (bool, error) {
	var cnt int64
	err := db.Model(&model.RubricCellModel{}).
		Where("rubric_cell_component_id = ? AND rubric_cell_criterion_id = ? AND rubric_cell_level_id = ? AND btrim(rubric_cell_text) <> ''",
			componentID, criterionID, levelID).
		Count(&cnt).Error
	return cnt > 0, err
}

// ComponentsOf: componentes activos de la rúbrica en orden de despliegue.
func ComponentsOf(db *gorm.DB, rubricID uuid.UUID) ([]ComponentRef, error) {
	var rows []model.RubricComponentModel
	if err := db.Where("rubric_component_rubric_id = ? AND rubric_component_is_active = TRUE", rubricID).
		Order("rubric_component_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ComponentRef, 0, len(rows))
	for _, r := range rows {
		out = append(out, ComponentRef{
			ID:        r.RubricComponentID,
			RubricID:  r.RubricComponentRubricID,
			Name:      r.RubricComponentName,
			WeightPct: r.RubricComponentWeightPct,
			Active:    r.RubricComponentIsActive,
		})
	}
	return out, nil
}

// CriteriaOf: criterios activos del componente en orden de despliegue.
func CriteriaOf(db *gorm.DB, componentID uuid.UUID) ([]CriterionRef, error) {
	var rows []model.RubricCriterionModel
	if err := db.Where("rubric_criterion_component_id = ? AND rubric_criterion_is_active = TRUE", componentID).
		Order("rubric_criterion_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]CriterionRef, 0, len(rows))
	for _, r := range rows {
		out = append(out, CriterionRef{
			ID:          r.RubricCriterionID,
			ComponentID: r.RubricCriterionComponentID,
			Name:        r.RubricCriterionName,
			Active:      r.RubricCriterionIsActive,
		})
	}
	return out, nil
}
