// file: internals/features/rubrics/dto/rubric_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"titulacion_backend/internals/features/rubrics/model"
)

// =======================
// Rubric
// =======================

type RubricCreateDTO struct {
	RubricAcademicPeriodID uuid.UUID `json:"rubric_academic_period_id" validate:"required"`
	RubricName             string    `json:"rubric_name"               validate:"required,min=3,max=160"`
}

type RubricUpdateDTO struct {
	RubricName     *string `json:"rubric_name,omitempty" validate:"omitempty,min=3,max=160"`
	RubricIsActive *bool   `json:"rubric_is_active,omitempty"`
}

type RubricResponseDTO struct {
	RubricID               uuid.UUID `json:"rubric_id"`
	RubricAcademicPeriodID uuid.UUID `json:"rubric_academic_period_id"`
	RubricName             string    `json:"rubric_name"`
	RubricIsActive         bool      `json:"rubric_is_active"`
	RubricCreatedAt        time.Time `json:"rubric_created_at"`
}

func (p *RubricCreateDTO) Normalize() {
	p.RubricName = strings.TrimSpace(p.RubricName)
}

func (p *RubricCreateDTO) ToModel() model.RubricModel {
	return model.RubricModel{
		RubricAcademicPeriodID: p.RubricAcademicPeriodID,
		RubricName:             p.RubricName,
		RubricIsActive:         true,
	}
}

func (u *RubricUpdateDTO) ApplyUpdates(ent *model.RubricModel) {
	if u.RubricName != nil {
		ent.RubricName = strings.TrimSpace(*u.RubricName)
	}
	if u.RubricIsActive != nil {
		ent.RubricIsActive = *u.RubricIsActive
	}
}

func RubricFromModel(ent model.RubricModel) RubricResponseDTO {
	return RubricResponseDTO{
		RubricID:               ent.RubricID,
		RubricAcademicPeriodID: ent.RubricAcademicPeriodID,
		RubricName:             ent.RubricName,
		RubricIsActive:         ent.RubricIsActive,
		RubricCreatedAt:        ent.RubricCreatedAt,
	}
}

func RubricsFromModels(list []model.RubricModel) []RubricResponseDTO {
	out := make([]RubricResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, RubricFromModel(m))
	}
	return out
}

// =======================
// Component
// =======================

type ComponentCreateDTO struct {
	RubricComponentName      string  `json:"rubric_component_name"       validate:"required,min=2,max=160"`
	RubricComponentWeightPct float64 `json:"rubric_component_weight_pct" validate:"required,gt=0,lte=100"`
	RubricComponentOrder     int     `json:"rubric_component_order"      validate:"gte=0"`
}

type ComponentUpdateDTO struct {
	RubricComponentName      *string  `json:"rubric_component_name,omitempty" validate:"omitempty,min=2,max=160"`
	RubricComponentWeightPct *float64 `json:"rubric_component_weight_pct,omitempty" validate:"omitempty,gt=0,lte=100"`
	RubricComponentOrder     *int     `json:"rubric_component_order,omitempty" validate:"omitempty,gte=0"`
	RubricComponentIsActive  *bool    `json:"rubric_component_is_active,omitempty"`
}

type ComponentResponseDTO struct {
	RubricComponentID        uuid.UUID `json:"rubric_component_id"`
	RubricComponentRubricID  uuid.UUID `json:"rubric_component_rubric_id"`
	RubricComponentName      string    `json:"rubric_component_name"`
	RubricComponentWeightPct float64   `json:"rubric_component_weight_pct"`
	RubricComponentOrder     int       `json:"rubric_component_order"`
	RubricComponentIsActive  bool      `json:"rubric_component_is_active"`
}

func (p *ComponentCreateDTO) ToModel(rubricID uuid.UUID) model.RubricComponentModel {
	return model.RubricComponentModel{
		RubricComponentRubricID:  rubricID,
		RubricComponentName:      strings.TrimSpace(p.RubricComponentName),
		RubricComponentWeightPct: p.RubricComponentWeightPct,
		RubricComponentOrder:     p.RubricComponentOrder,
		RubricComponentIsActive:  true,
	}
}

func (u *ComponentUpdateDTO) ApplyUpdates(ent *model.RubricComponentModel) {
	if u.RubricComponentName != nil {
		ent.RubricComponentName = strings.TrimSpace(*u.RubricComponentName)
	}
	if u.RubricComponentWeightPct != nil {
		ent.RubricComponentWeightPct = *u.RubricComponentWeightPct
	}
	if u.RubricComponentOrder != nil {
		ent.RubricComponentOrder = *u.RubricComponentOrder
	}
	if u.RubricComponentIsActive != nil {
		ent.RubricComponentIsActive = *u.RubricComponentIsActive
	}
}

func ComponentFromModel(ent model.RubricComponentModel) ComponentResponseDTO {
	return ComponentResponseDTO{
		RubricComponentID:        ent.RubricComponentID,
		RubricComponentRubricID:  ent.RubricComponentRubricID,
		RubricComponentName:      ent.RubricComponentName,
		RubricComponentWeightPct: ent.RubricComponentWeightPct,
		RubricComponentOrder:     ent.RubricComponentOrder,
		RubricComponentIsActive:  ent.RubricComponentIsActive,
	}
}

func ComponentsFromModels(list []model.RubricComponentModel) []ComponentResponseDTO {
	out := make([]ComponentResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ComponentFromModel(m))
	}
	return out
}

// =======================
// Criterion
// =======================

type CriterionCreateDTO struct {
	RubricCriterionName  string `json:"rubric_criterion_name"  validate:"required,min=2,max=200"`
	RubricCriterionOrder int    `json:"rubric_criterion_order" validate:"gte=0"`
}

type CriterionUpdateDTO struct {
	RubricCriterionName     *string `json:"rubric_criterion_name,omitempty" validate:"omitempty,min=2,max=200"`
	RubricCriterionOrder    *int    `json:"rubric_criterion_order,omitempty" validate:"omitempty,gte=0"`
	RubricCriterionIsActive *bool   `json:"rubric_criterion_is_active,omitempty"`
}

type CriterionResponseDTO struct {
	RubricCriterionID          uuid.UUID `json:"rubric_criterion_id"`
	RubricCriterionComponentID uuid.UUID `json:"rubric_criterion_component_id"`
	RubricCriterionName        string    `json:"rubric_criterion_name"`
	RubricCriterionOrder       int       `json:"rubric_criterion_order"`
	RubricCriterionIsActive    bool      `json:"rubric_criterion_is_active"`
}

func (p *CriterionCreateDTO) ToModel(componentID uuid.UUID) model.RubricCriterionModel {
	return model.RubricCriterionModel{
		RubricCriterionComponentID: componentID,
		RubricCriterionName:        strings.TrimSpace(p.RubricCriterionName),
		RubricCriterionOrder:       p.RubricCriterionOrder,
		RubricCriterionIsActive:    true,
	}
}

func (u *CriterionUpdateDTO) ApplyUpdates(ent *model.RubricCriterionModel) {
	if u.RubricCriterionName != nil {
		ent.RubricCriterionName = strings.TrimSpace(*u.RubricCriterionName)
	}
	if u.RubricCriterionOrder != nil {
		ent.RubricCriterionOrder = *u.RubricCriterionOrder
	}
	if u.RubricCriterionIsActive != nil {
		ent.RubricCriterionIsActive = *u.RubricCriterionIsActive
	}
}

func CriterionFromModel(ent model.RubricCriterionModel) CriterionResponseDTO {
	return CriterionResponseDTO{
		RubricCriterionID:          ent.RubricCriterionID,
		RubricCriterionComponentID: ent.RubricCriterionComponentID,
		RubricCriterionName:        ent.RubricCriterionName,
		RubricCriterionOrder:       ent.RubricCriterionOrder,
		RubricCriterionIsActive:    ent.RubricCriterionIsActive,
	}
}

func CriteriaFromModels(list []model.RubricCriterionModel) []CriterionResponseDTO {
	out := make([]CriterionResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, CriterionFromModel(m))
	}
	return out
}

// =======================
// Level
// =======================

type LevelCreateDTO struct {
	RubricLevelLabel string  `json:"rubric_level_label" validate:"required,min=1,max=80"`
	RubricLevelValue float64 `json:"rubric_level_value" validate:"gte=0,lte=20"`
	RubricLevelOrder int     `json:"rubric_level_order" validate:"gte=0"`
}

type LevelUpdateDTO struct {
	RubricLevelLabel    *string  `json:"rubric_level_label,omitempty" validate:"omitempty,min=1,max=80"`
	RubricLevelValue    *float64 `json:"rubric_level_value,omitempty" validate:"omitempty,gte=0,lte=20"`
	RubricLevelOrder    *int     `json:"rubric_level_order,omitempty" validate:"omitempty,gte=0"`
	RubricLevelIsActive *bool    `json:"rubric_level_is_active,omitempty"`
}

type LevelResponseDTO struct {
	RubricLevelID       uuid.UUID `json:"rubric_level_id"`
	RubricLevelRubricID uuid.UUID `json:"rubric_level_rubric_id"`
	RubricLevelLabel    string    `json:"rubric_level_label"`
	RubricLevelValue    float64   `json:"rubric_level_value"`
	RubricLevelOrder    int       `json:"rubric_level_order"`
	RubricLevelIsActive bool      `json:"rubric_level_is_active"`
}

func (p *LevelCreateDTO) ToModel(rubricID uuid.UUID) model.RubricLevelModel {
	return model.RubricLevelModel{
		RubricLevelRubricID: rubricID,
		RubricLevelLabel:    strings.TrimSpace(p.RubricLevelLabel),
		RubricLevelValue:    p.RubricLevelValue,
		RubricLevelOrder:    p.RubricLevelOrder,
		RubricLevelIsActive: true,
	}
}

func (u *LevelUpdateDTO) ApplyUpdates(ent *model.RubricLevelModel) {
	if u.RubricLevelLabel != nil {
		ent.RubricLevelLabel = strings.TrimSpace(*u.RubricLevelLabel)
	}
	if u.RubricLevelValue != nil {
		ent.RubricLevelValue = *u.RubricLevelValue
	}
	if u.RubricLevelOrder != nil {
		ent.RubricLevelOrder = *u.RubricLevelOrder
	}
	if u.RubricLevelIsActive != nil {
		ent.RubricLevelIsActive = *u.RubricLevelIsActive
	}
}

func LevelFromModel(ent model.RubricLevelModel) LevelResponseDTO {
	return LevelResponseDTO{
		RubricLevelID:       ent.RubricLevelID,
		RubricLevelRubricID: ent.RubricLevelRubricID,
		RubricLevelLabel:    ent.RubricLevelLabel,
		RubricLevelValue:    ent.RubricLevelValue,
		RubricLevelOrder:    ent.RubricLevelOrder,
		RubricLevelIsActive: ent.RubricLevelIsActive,
	}
}

func LevelsFromModels(list []model.RubricLevelModel) []LevelResponseDTO {
	out := make([]LevelResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, LevelFromModel(m))
	}
	return out
}

// =======================
// Cell
// =======================

type CellUpsertDTO struct {
	RubricCellComponentID uuid.UUID `json:"rubric_cell_component_id" validate:"required"`
	RubricCellCriterionID uuid.UUID `json:"rubric_cell_criterion_id" validate:"required"`
	RubricCellLevelID     uuid.UUID `json:"rubric_cell_level_id"     validate:"required"`
	RubricCellText        string    `json:"rubric_cell_text"         validate:"required"`
}

type CellResponseDTO struct {
	RubricCellID          uuid.UUID `json:"rubric_cell_id"`
	RubricCellComponentID uuid.UUID `json:"rubric_cell_component_id"`
	RubricCellCriterionID uuid.UUID `json:"rubric_cell_criterion_id"`
	RubricCellLevelID     uuid.UUID `json:"rubric_cell_level_id"`
	RubricCellText        string    `json:"rubric_cell_text"`
}

func CellFromModel(ent model.RubricCellModel) CellResponseDTO {
	return CellResponseDTO{
		RubricCellID:          ent.RubricCellID,
		RubricCellComponentID: ent.RubricCellComponentID,
		RubricCellCriterionID: ent.RubricCellCriterionID,
		RubricCellLevelID:     ent.RubricCellLevelID,
		RubricCellText:        ent.RubricCellText,
	}
}

func CellsFromModels(list []model.RubricCellModel) []CellResponseDTO {
	out := make([]CellResponseDTO, 0, len(list))
	for _, m := range list {
		out = append(out, CellFromModel(m))
	}
	return out
}
